package infra

// pdf.go — audit report export using go-pdf/fpdf.
// Renders a DailyBugReport-style A4 sheet:
//   - Title with the report date
//   - One block per finding (kind label, description, detail table)
//   - Shifts that could not be checked
//   - Bold grand total

import (
	"bytes"
	"fmt"

	"cuadre/internal/recon"

	"github.com/go-pdf/fpdf"
)

var etiquetasPDF = map[recon.TipoHallazgo]string{
	recon.TurnoExcedeLog:          "Total de turno excede el log",
	recon.DuplicadosEnLog:         "Entradas duplicadas en el log",
	recon.DevolucionSinFormalizar: "Devoluciones sin formalizar",
	recon.DuplicacionEntreTurnos:  "Duplicacion entre turnos",
}

// GenerarReportePDF renders the audit view of a daily report and returns the
// PDF bytes (callers stream it or hand it to the mailer).
func GenerarReportePDF(rep *recon.ReporteDia) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Cuadre de devoluciones", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, rep.Fecha.Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(rep.Hallazgos) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentW, 6, "Sin diferencias detectadas.", "", 1, "L", false, 0, "")
	}

	for _, h := range rep.Hallazgos {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, etiquetasPDF[h.Tipo], "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 5, h.Descripcion, "", "L", false)

		for _, d := range h.Detalle {
			var linea string
			if h.Tipo == recon.DuplicacionEntreTurnos {
				linea = fmt.Sprintf("folio %d: factura $%s / movimientos $%s / exceso $%s",
					d.Folio, d.TotalFactura.StringFixed(2), d.SumaMovimientos.StringFixed(2), d.Monto.StringFixed(2))
			} else {
				linea = fmt.Sprintf("%s: $%s (x%d)", d.Descripcion, d.Monto.StringFixed(2), d.Cuenta)
			}
			pdf.SetX(20)
			pdf.MultiCell(contentW-5, 5, "- "+linea, "", "L", false)
		}
		pdf.Ln(2)
	}

	if len(rep.TurnosConError) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Turnos sin datos: %v", rep.TurnosConError), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "TOTAL: $"+rep.MontoTotal.StringFixed(2), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
