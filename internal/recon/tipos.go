// Package recon implements the duplicate-detection and reconciliation engine.
// It cross-references three inconsistent data sources inside the POS database
// (the rolled-up shift total, the raw movement log, and the formal returns
// ledger) and quantifies each class of data-integrity defect the POS is known
// to introduce. All arithmetic uses shopspring/decimal: the defects depend on
// exact repeats and exact differences, never on float closeness.
package recon

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoHallazgo classifies each quantified defect.
type TipoHallazgo string

const (
	// TurnoExcedeLog: the shift's rolled-up total is larger than the sum of
	// its movement log.
	TurnoExcedeLog TipoHallazgo = "TURNO_EXCEDE_LOG"
	// DuplicadosEnLog: identical (descripcion, monto) entries repeated within
	// one shift's movement log.
	DuplicadosEnLog TipoHallazgo = "DUPLICADOS_EN_LOG"
	// DevolucionSinFormalizar: returns present in the de-duplicated movement
	// log but missing from (or under-represented in) the formal ledger.
	DevolucionSinFormalizar TipoHallazgo = "DEVOLUCION_SIN_FORMALIZAR"
	// DuplicacionEntreTurnos: a partial return re-emitted by the POS in a
	// later shift when the invoice is cancelled, so the day-wide per-folio
	// movement sum exceeds the invoice total.
	DuplicacionEntreTurnos TipoHallazgo = "DUPLICACION_ENTRE_TURNOS"
)

// TurnoGlobal is the sentinel shift id for findings that span every shift of
// the day (cross-shift correlation cannot be pinned to a single turno).
const TurnoGlobal = 0

// Tolerancia absorbs the rounding noise the POS itself introduces upstream.
// A computed discrepancy at or below this value is treated as zero.
var Tolerancia = decimal.New(1, -2) // 0.01

// bandaAtribucion is the window used to attribute a TurnoExcedeLog difference
// to specific movement-log entries: shift totals are typically bumped by
// exactly one entry's value, so only groups within ±0.02 of the difference
// are listed.
var bandaAtribucion = decimal.New(2, -2) // 0.02

// LineaDetalle is one contributing line item inside a finding. Which fields
// are populated depends on the finding kind: movement-log findings fill
// Descripcion/MontoUnitario/Cuenta, the cross-shift finding fills the folio
// columns. Monto is the line's contribution to the finding total; for
// duplicate lines that is the excess (unitario × (cuenta − 1)), for the rest
// it equals MontoUnitario.
type LineaDetalle struct {
	Descripcion     string          `json:"descripcion,omitempty"`
	Monto           decimal.Decimal `json:"monto"`
	MontoUnitario   decimal.Decimal `json:"monto_unitario"`
	Cuenta          int             `json:"cuenta,omitempty"`
	Folio           int             `json:"folio,omitempty"`
	TotalFactura    decimal.Decimal `json:"total_factura"`
	SumaMovimientos decimal.Decimal `json:"suma_movimientos"`
}

// Hallazgo is one quantified, attributable defect. Monto is always >= 0.
type Hallazgo struct {
	TurnoID     int             `json:"turno_id"`
	Tipo        TipoHallazgo    `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	Detalle     []LineaDetalle  `json:"detalle,omitempty"`
}

// ReporteDia aggregates every finding for one calendar date. It is a
// read-only snapshot: recomputing with unchanged source data yields an
// identical value.
type ReporteDia struct {
	Fecha      time.Time       `json:"fecha"`
	HayBugs    bool            `json:"hay_bugs"`
	MontoTotal decimal.Decimal `json:"monto_total"`
	Hallazgos  []Hallazgo      `json:"hallazgos"`
	// TurnosConError lists shifts whose data could not be fetched and which
	// therefore contribute no findings. Lets callers tell "clean day" apart
	// from "could not check".
	TurnosConError []int `json:"turnos_con_error,omitempty"`
	// ErrorDia is set when the shift list itself could not be fetched: the
	// whole day is unverified, not clean. Such reports are never cached.
	ErrorDia string `json:"error_dia,omitempty"`
}
