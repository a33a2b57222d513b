package recon

import (
	"cuadre/internal/model"

	"github.com/shopspring/decimal"
)

// GrupoMovimiento is one (descripcion, monto) bucket of a shift's movement
// log, with every original row preserved for detail rendering.
type GrupoMovimiento struct {
	Descripcion string
	Monto       decimal.Decimal
	Cuenta      int
	Movimientos []model.MovimientoDevolucion
}

// claveGrupo builds the exact-equality grouping key. Monto.String() is
// canonical for a given decimal value, so two rows land in the same bucket
// only when description and amount are byte-identical — the duplication
// defect produces exact repeats, never near-misses.
func claveGrupo(m model.MovimientoDevolucion) string {
	return m.Descripcion + "\x00" + m.Monto.String()
}

// AgruparMovimientos buckets a single shift's return movements by
// (descripcion, monto), preserving first-appearance order. Empty input
// yields an empty (non-nil) slice.
func AgruparMovimientos(movs []model.MovimientoDevolucion) []GrupoMovimiento {
	grupos := make([]GrupoMovimiento, 0, len(movs))
	indice := make(map[string]int, len(movs))

	for _, m := range movs {
		k := claveGrupo(m)
		if i, ok := indice[k]; ok {
			grupos[i].Cuenta++
			grupos[i].Movimientos = append(grupos[i].Movimientos, m)
			continue
		}
		indice[k] = len(grupos)
		grupos = append(grupos, GrupoMovimiento{
			Descripcion: m.Descripcion,
			Monto:       m.Monto,
			Cuenta:      1,
			Movimientos: []model.MovimientoDevolucion{m},
		})
	}
	return grupos
}
