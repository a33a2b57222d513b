package model

import "github.com/shopspring/decimal"

// MovimientoDevolucion is one return/cancellation line from the POS movement
// log. Read-only snapshot: the POS database is third-party and we never write
// to it. Descripcion is vendor-controlled free text and may embed the folio
// of the originating invoice as "#<digits>".
type MovimientoDevolucion struct {
	TurnoID     int             `json:"turno_id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"` // always >= 0 in this log
	Tipo        string          `json:"tipo"`  // movement category as stored by the POS
}
