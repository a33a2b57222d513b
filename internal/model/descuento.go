package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Descuento is a manually recorded discount in the local settlement store.
// Lives in our own database, never in the POS.
type Descuento struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Fecha time.Time       `gorm:"type:date;not null;index" json:"fecha"`
	Folio int             `gorm:"not null" json:"folio"`
	Monto decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"monto"`
	// Motivo documents why the discount was granted (free text, required)
	Motivo    string    `gorm:"not null" json:"motivo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
