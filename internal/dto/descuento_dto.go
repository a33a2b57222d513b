package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearDescuentoRequest struct {
	Fecha  string          `json:"fecha"  validate:"required,datetime=2006-01-02"`
	Folio  int             `json:"folio"  validate:"required,min=1"`
	Monto  decimal.Decimal `json:"monto"  validate:"required,gt=0"`
	Motivo string          `json:"motivo" validate:"required,min=3"`
}

type ActualizarDescuentoRequest struct {
	Monto  decimal.Decimal `json:"monto"  validate:"omitempty,gt=0"`
	Motivo string          `json:"motivo" validate:"omitempty,min=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DescuentoResponse struct {
	ID     string          `json:"id"`
	Fecha  string          `json:"fecha"`
	Folio  int             `json:"folio"`
	Monto  decimal.Decimal `json:"monto"`
	Motivo string          `json:"motivo"`
}
