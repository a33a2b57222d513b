package recon

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"cuadre/internal/model"

	"github.com/shopspring/decimal"
)

// folioRe matches the "#<digits>" token the POS embeds in movement
// descriptions. Vendor-controlled free text, so the rule lives in one place:
// change it here and the correlation algorithm stays untouched.
var folioRe = regexp.MustCompile(`#(\d+)`)

// ExtraerFolio returns the first embedded invoice number of a movement
// description, or false when the text carries none.
func ExtraerFolio(descripcion string) (int, bool) {
	m := folioRe.FindStringSubmatch(descripcion)
	if m == nil {
		return 0, false
	}
	folio, err := strconv.Atoi(m[1])
	if err != nil {
		// digits too large for int — treat as unattributable
		return 0, false
	}
	return folio, true
}

// CorrelacionarFolios detects the cross-shift duplication defect: a partial
// return recorded against an invoice in one shift is re-emitted by the POS
// when that invoice is later cancelled in a different shift. Invisible to
// per-shift reconciliation, so movements are summed per folio across the
// whole day and compared against each cancelled invoice's total. Only excess
// is flagged; a shortfall is not a bug in this design. Returns nil when no
// folio shows an excess above tolerance.
func CorrelacionarFolios(facturas []model.FacturaCancelada, movs []model.MovimientoDevolucion) *Hallazgo {
	sumaPorFolio := make(map[int]decimal.Decimal)
	for _, m := range movs {
		folio, ok := ExtraerFolio(m.Descripcion)
		if !ok {
			continue // unattributable movement, excluded from correlation
		}
		sumaPorFolio[folio] = sumaPorFolio[folio].Add(m.Monto)
	}

	// Deterministic output regardless of the order the adapter returned rows.
	ordenadas := make([]model.FacturaCancelada, 0, len(facturas))
	for _, f := range facturas {
		if f.Cancelada {
			ordenadas = append(ordenadas, f)
		}
	}
	sort.Slice(ordenadas, func(i, j int) bool { return ordenadas[i].Folio < ordenadas[j].Folio })

	h := &Hallazgo{
		TurnoID: TurnoGlobal,
		Tipo:    DuplicacionEntreTurnos,
		Monto:   decimal.Zero,
	}
	for _, f := range ordenadas {
		suma, ok := sumaPorFolio[f.Folio]
		if !ok {
			continue // no movement mentions this folio anywhere in the day
		}
		exceso := suma.Sub(f.Total)
		if !exceso.GreaterThan(Tolerancia) {
			continue
		}
		h.Monto = h.Monto.Add(exceso)
		h.Detalle = append(h.Detalle, LineaDetalle{
			Folio:           f.Folio,
			TotalFactura:    f.Total,
			SumaMovimientos: suma,
			Monto:           exceso,
		})
	}

	if len(h.Detalle) == 0 {
		return nil
	}
	h.Descripcion = fmt.Sprintf(
		"devoluciones parciales duplicadas entre turnos por $%s (%d folios)",
		h.Monto.StringFixed(2), len(h.Detalle))
	return h
}
