package model

import "github.com/shopspring/decimal"

// FacturaCancelada is a cancelled sales invoice read from the POS.
// Folio is the invoice number; unique per business practice, not enforced here.
type FacturaCancelada struct {
	Folio     int             `json:"folio"`
	TurnoID   int             `json:"turno_id"`
	Total     decimal.Decimal `json:"total"`
	Cancelada bool            `json:"cancelada"`
}
