package recon

import (
	"fmt"

	"cuadre/internal/model"
)

// CuadrarTurno reconciles one shift's three independently sourced totals
// against the duplicate analysis of its movement log. Findings are emitted
// in a fixed order — TurnoExcedeLog, DuplicadosEnLog, DevolucionSinFormalizar —
// so report output is deterministic.
func CuadrarTurno(resumen model.ResumenTurno, dup ResultadoDuplicados) []Hallazgo {
	var hallazgos []Hallazgo

	// 1. Rolled-up shift total vs raw movement-log sum.
	difTurno := resumen.TotalTurno.Sub(resumen.SumaMovimientos)
	if difTurno.GreaterThan(Tolerancia) {
		h := Hallazgo{
			TurnoID: resumen.TurnoID,
			Tipo:    TurnoExcedeLog,
			Monto:   difTurno,
			Descripcion: fmt.Sprintf(
				"turno %d: el total de devoluciones del turno supera la suma del log por $%s",
				resumen.TurnoID, difTurno.StringFixed(2)),
		}
		// Best-effort attribution: shift totals are usually bumped by exactly
		// one entry, so list groups whose amount sits inside the band.
		for _, g := range dup.Grupos {
			if g.Monto.Sub(difTurno).Abs().LessThanOrEqual(bandaAtribucion) {
				h.Detalle = append(h.Detalle, LineaDetalle{
					Descripcion:   g.Descripcion,
					Monto:         g.Monto,
					MontoUnitario: g.Monto,
					Cuenta:        g.Cuenta,
				})
			}
		}
		hallazgos = append(hallazgos, h)
	}

	// 2. Repeated (descripcion, monto) entries inside the log.
	if dup.MontoDuplicado.GreaterThan(Tolerancia) {
		h := Hallazgo{
			TurnoID: resumen.TurnoID,
			Tipo:    DuplicadosEnLog,
			Monto:   dup.MontoDuplicado,
			Descripcion: fmt.Sprintf(
				"turno %d: entradas duplicadas en el log de movimientos por $%s",
				resumen.TurnoID, dup.MontoDuplicado.StringFixed(2)),
		}
		for _, d := range dup.Duplicados {
			h.Detalle = append(h.Detalle, LineaDetalle{
				Descripcion:   d.Descripcion,
				Monto:         d.MontoDuplicado,
				MontoUnitario: d.MontoUnitario,
				Cuenta:        d.Cuenta,
			})
		}
		hallazgos = append(hallazgos, h)
	}

	// 3. De-duplicated log vs formal returns ledger.
	sinFormalizar := dup.TotalDepurado.Sub(resumen.SumaFormal)
	if sinFormalizar.GreaterThan(Tolerancia) {
		h := Hallazgo{
			TurnoID: resumen.TurnoID,
			Tipo:    DevolucionSinFormalizar,
			Monto:   sinFormalizar,
			Descripcion: fmt.Sprintf(
				"turno %d: devoluciones en el log por $%s nunca se formalizaron como devolucion",
				resumen.TurnoID, sinFormalizar.StringFixed(2)),
		}
		// Gross per-item listing for audit legibility: every group with its
		// occurrence count, duplicates not re-subtracted here.
		for _, g := range dup.Grupos {
			h.Detalle = append(h.Detalle, LineaDetalle{
				Descripcion:   g.Descripcion,
				Monto:         g.Monto,
				MontoUnitario: g.Monto,
				Cuenta:        g.Cuenta,
			})
		}
		hallazgos = append(hallazgos, h)
	}

	return hallazgos
}
