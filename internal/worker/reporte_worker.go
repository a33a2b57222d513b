package worker

// reporte_worker.go
// Processes report-precompute jobs from QueueReporte: computes (and thereby
// caches) the reconciliation report for a date, renders the audit PDF, and
// hands delivery off to the email queue.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cuadre/internal/infra"
	"cuadre/internal/recon"
	"cuadre/internal/service"

	"github.com/rs/zerolog/log"
)

// ReporteJobPayload is the job envelope sent to QueueReporte.
type ReporteJobPayload struct {
	Fecha string `json:"fecha"` // AAAA-MM-DD
	// EmailTo, when set, triggers delivery of the rendered PDF.
	EmailTo string `json:"email_to,omitempty"`
}

type ReporteWorker struct {
	svc        service.ReporteService
	dispatcher *Dispatcher
}

func NewReporteWorker(svc service.ReporteService, dispatcher *Dispatcher) *ReporteWorker {
	return &ReporteWorker{svc: svc, dispatcher: dispatcher}
}

// Process computes the date's report and, when requested, enqueues the email.
func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReporteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return nil // malformed payloads are not retryable
	}
	fecha, err := time.Parse("2006-01-02", payload.Fecha)
	if err != nil {
		log.Error().Str("fecha", payload.Fecha).Msg("reporte_worker: invalid date")
		return nil
	}

	rep, err := w.svc.Reporte(ctx, fecha)
	if err != nil {
		return fmt.Errorf("reporte_worker: compute %s: %w", payload.Fecha, err)
	}
	log.Info().Str("fecha", payload.Fecha).Bool("hay_bugs", rep.HayBugs).
		Str("monto_total", rep.MontoTotal.StringFixed(2)).Msg("reporte_worker: reporte calculado")

	if payload.EmailTo == "" {
		return nil
	}

	pdfData, err := infra.GenerarReportePDF(rep)
	if err != nil {
		return fmt.Errorf("reporte_worker: render pdf: %w", err)
	}
	_, resumen := recon.ResumenCompacto(rep)
	return w.dispatcher.EnqueueEmail(ctx, EmailJobPayload{
		ToEmail: payload.EmailTo,
		Subject: fmt.Sprintf("Cuadre de devoluciones %s — %s", payload.Fecha, resumen),
		Body:    recon.DetalleVerboso(rep),
		PDFData: pdfData,
		PDFName: fmt.Sprintf("cuadre_%s.pdf", payload.Fecha),
	})
}
