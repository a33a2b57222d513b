package dto

import "github.com/shopspring/decimal"

// ResumenCuadreResponse is the status-bar tuple: the day's total defect
// amount plus the compact one-line rendering.
type ResumenCuadreResponse struct {
	Fecha      string          `json:"fecha"`
	MontoTotal decimal.Decimal `json:"monto_total"`
	Resumen    string          `json:"resumen"`
}

// DetalleCuadreResponse carries the verbose audit rendering.
type DetalleCuadreResponse struct {
	Fecha   string `json:"fecha"`
	Detalle string `json:"detalle"`
}
