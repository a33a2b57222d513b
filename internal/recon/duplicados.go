package recon

import "github.com/shopspring/decimal"

// DetalleDuplicado describes one duplicate-suspect group: a bucket whose
// entry repeated more than once within the same shift.
type DetalleDuplicado struct {
	Descripcion    string
	MontoUnitario  decimal.Decimal
	Cuenta         int
	MontoDuplicado decimal.Decimal // MontoUnitario × (Cuenta − 1)
}

// ResultadoDuplicados carries the duplicate analysis of one shift's grouped
// movement log. Invariant (by construction, covered by tests):
//
//	TotalCrudo − TotalDepurado == MontoDuplicado
type ResultadoDuplicados struct {
	Grupos []GrupoMovimiento
	// TotalCrudo is Σ monto×cuenta over all groups: the log as the POS wrote it.
	TotalCrudo decimal.Decimal
	// TotalDepurado counts each group's amount exactly once.
	TotalDepurado decimal.Decimal
	// MontoDuplicado is the summed excess of every repeated group.
	MontoDuplicado decimal.Decimal
	Duplicados     []DetalleDuplicado
}

// DetectarDuplicados flags every group occurring more than once as a
// duplicate suspect and quantifies the excess: all occurrences beyond the
// first. The engine cannot structurally distinguish a POS duplication
// artifact from two legitimately identical returns; any recurrence is
// reported in full, matching how the dependent reporting interprets the log.
// A group is only ever trimmed to one occurrence, never removed.
func DetectarDuplicados(grupos []GrupoMovimiento) ResultadoDuplicados {
	res := ResultadoDuplicados{
		Grupos:         grupos,
		TotalCrudo:     decimal.Zero,
		TotalDepurado:  decimal.Zero,
		MontoDuplicado: decimal.Zero,
	}

	for _, g := range grupos {
		res.TotalCrudo = res.TotalCrudo.Add(g.Monto.Mul(decimal.NewFromInt(int64(g.Cuenta))))
		res.TotalDepurado = res.TotalDepurado.Add(g.Monto)

		if g.Cuenta <= 1 {
			continue
		}
		exceso := g.Monto.Mul(decimal.NewFromInt(int64(g.Cuenta - 1)))
		res.MontoDuplicado = res.MontoDuplicado.Add(exceso)
		res.Duplicados = append(res.Duplicados, DetalleDuplicado{
			Descripcion:    g.Descripcion,
			MontoUnitario:  g.Monto,
			Cuenta:         g.Cuenta,
			MontoDuplicado: exceso,
		})
	}
	return res
}
