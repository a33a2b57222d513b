package recon

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// abreviaturas are the status-bar labels per finding kind.
var abreviaturas = map[TipoHallazgo]string{
	TurnoExcedeLog:          "TURNO",
	DuplicadosEnLog:         "DUP",
	DevolucionSinFormalizar: "SINDEV",
	DuplicacionEntreTurnos:  "XDUP",
}

// maxLineasDetalle caps the verbose view at a readable tooltip size.
const maxLineasDetalle = 3

// ResumenCompacto renders the one-line status-bar view: per kind present,
// "KIND$<amount rounded to whole pesos>", joined by " | ". Returns the grand
// total alongside. A clean report renders "OK".
func ResumenCompacto(rep *ReporteDia) (decimal.Decimal, string) {
	if rep.ErrorDia != "" {
		return rep.MontoTotal, "SIN DATOS"
	}

	sumas := make(map[TipoHallazgo]decimal.Decimal)
	var orden []TipoHallazgo
	for _, h := range rep.Hallazgos {
		if _, ok := sumas[h.Tipo]; !ok {
			orden = append(orden, h.Tipo)
		}
		sumas[h.Tipo] = sumas[h.Tipo].Add(h.Monto)
	}

	if len(orden) == 0 {
		return rep.MontoTotal, "OK"
	}

	partes := make([]string, 0, len(orden))
	for _, tipo := range orden {
		partes = append(partes, fmt.Sprintf("%s$%s", abreviaturas[tipo], sumas[tipo].Round(0)))
	}
	return rep.MontoTotal, strings.Join(partes, " | ")
}

// DetalleVerboso renders the multi-line audit view: a titled block per
// finding with up to three detail lines each, plus a grand-total footer.
func DetalleVerboso(rep *ReporteDia) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cuadre de devoluciones — %s\n", rep.Fecha.Format("2006-01-02"))

	if rep.ErrorDia != "" {
		fmt.Fprintf(&b, "Dia sin verificar: %s\n", rep.ErrorDia)
	} else if len(rep.Hallazgos) == 0 {
		b.WriteString("Sin diferencias detectadas.\n")
	}
	for _, h := range rep.Hallazgos {
		fmt.Fprintf(&b, "\n[%s] %s\n", abreviaturas[h.Tipo], h.Descripcion)
		for i, d := range h.Detalle {
			if i == maxLineasDetalle {
				fmt.Fprintf(&b, "  … y %d mas\n", len(h.Detalle)-maxLineasDetalle)
				break
			}
			if h.Tipo == DuplicacionEntreTurnos {
				fmt.Fprintf(&b, "  - folio %d: factura $%s, movimientos $%s, exceso $%s\n",
					d.Folio, d.TotalFactura.StringFixed(2), d.SumaMovimientos.StringFixed(2), d.Monto.StringFixed(2))
				continue
			}
			fmt.Fprintf(&b, "  - %s: $%s (x%d)\n", d.Descripcion, d.Monto.StringFixed(2), d.Cuenta)
		}
	}

	if len(rep.TurnosConError) > 0 {
		fmt.Fprintf(&b, "\nTurnos sin datos: %v\n", rep.TurnosConError)
	}
	fmt.Fprintf(&b, "\nTOTAL: $%s\n", rep.MontoTotal.StringFixed(2))
	return b.String()
}
