package service

import (
	"context"
	"encoding/json"
	"time"

	"cuadre/internal/dto"
	"cuadre/internal/infra"
	"cuadre/internal/recon"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyPrefix = "cuadre:"
	cacheTTL       = 24 * time.Hour
)

type ReporteService interface {
	Reporte(ctx context.Context, fecha time.Time) (*recon.ReporteDia, error)
	Resumen(ctx context.Context, fecha time.Time) (*dto.ResumenCuadreResponse, error)
	Detalle(ctx context.Context, fecha time.Time) (*dto.DetalleCuadreResponse, error)
	PDF(ctx context.Context, fecha time.Time) ([]byte, error)
}

type reporteService struct {
	gen *recon.Generador
	rdb *redis.Client // nil disables caching (tests, CLI)
}

func NewReporteService(gen *recon.Generador, rdb *redis.Client) ReporteService {
	return &reporteService{gen: gen, rdb: rdb}
}

// Reporte returns the reconciliation report for a date. Closed days are
// immutable in the POS, so their reports are cached; today's data is still
// moving and is always recomputed.
func (s *reporteService) Reporte(ctx context.Context, fecha time.Time) (*recon.ReporteDia, error) {
	if rep := s.deCache(ctx, fecha); rep != nil {
		return rep, nil
	}

	rep := s.gen.GenerarReporteDia(ctx, fecha)
	s.aCache(ctx, fecha, rep)
	return rep, nil
}

func (s *reporteService) Resumen(ctx context.Context, fecha time.Time) (*dto.ResumenCuadreResponse, error) {
	rep, err := s.Reporte(ctx, fecha)
	if err != nil {
		return nil, err
	}
	total, linea := recon.ResumenCompacto(rep)
	return &dto.ResumenCuadreResponse{
		Fecha:      fecha.Format("2006-01-02"),
		MontoTotal: total,
		Resumen:    linea,
	}, nil
}

func (s *reporteService) Detalle(ctx context.Context, fecha time.Time) (*dto.DetalleCuadreResponse, error) {
	rep, err := s.Reporte(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return &dto.DetalleCuadreResponse{
		Fecha:   fecha.Format("2006-01-02"),
		Detalle: recon.DetalleVerboso(rep),
	}, nil
}

func (s *reporteService) PDF(ctx context.Context, fecha time.Time) ([]byte, error) {
	rep, err := s.Reporte(ctx, fecha)
	if err != nil {
		return nil, err
	}
	return infra.GenerarReportePDF(rep)
}

// ── Cache helpers ─────────────────────────────────────────────────────────────

func esCacheable(fecha time.Time) bool {
	hoy := time.Now().Format("2006-01-02")
	return fecha.Format("2006-01-02") < hoy
}

func claveCache(fecha time.Time) string {
	return cacheKeyPrefix + fecha.Format("2006-01-02")
}

func (s *reporteService) deCache(ctx context.Context, fecha time.Time) *recon.ReporteDia {
	if s.rdb == nil || !esCacheable(fecha) {
		return nil
	}
	raw, err := s.rdb.Get(ctx, claveCache(fecha)).Bytes()
	if err != nil {
		return nil // miss or redis down — recompute either way
	}
	var rep recon.ReporteDia
	if err := json.Unmarshal(raw, &rep); err != nil {
		log.Warn().Err(err).Str("clave", claveCache(fecha)).Msg("reporte: cache corrupta, se recalcula")
		return nil
	}
	return &rep
}

func (s *reporteService) aCache(ctx context.Context, fecha time.Time, rep *recon.ReporteDia) {
	if s.rdb == nil || !esCacheable(fecha) {
		return
	}
	// A report with failed shifts (or a failed shift listing) is incomplete —
	// caching it would freeze a partial result for a day.
	if len(rep.TurnosConError) > 0 || rep.ErrorDia != "" {
		return
	}
	raw, err := json.Marshal(rep)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, claveCache(fecha), raw, cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("reporte: no se pudo guardar en cache")
	}
}
