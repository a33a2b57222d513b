package model

import "github.com/shopspring/decimal"

// ResumenTurno carries the three independently reported return totals the POS
// keeps for one shift. They should agree; when they don't, the difference is
// exactly what the reconciliation engine quantifies.
type ResumenTurno struct {
	TurnoID int `json:"turno_id"`
	// TotalTurno is the rolled-up "devoluciones en efectivo" value the POS
	// stores directly on the shift record.
	TotalTurno decimal.Decimal `json:"total_turno"`
	// SumaMovimientos is SUM(monto) over the shift's return movement log.
	// May be inflated by duplicated entries.
	SumaMovimientos decimal.Decimal `json:"suma_movimientos"`
	// SumaFormal is SUM(importe) over the formal returns ledger. Assumed
	// duplicate-free but only covers returns that were formally processed.
	SumaFormal decimal.Decimal `json:"suma_formal"`
}
