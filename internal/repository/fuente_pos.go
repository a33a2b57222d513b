package repository

import (
	"context"
	"fmt"
	"time"

	"cuadre/internal/infra"
	"cuadre/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// tipoDevolucion is the movement category the POS assigns to return and
// cancellation entries in its movement log.
const tipoDevolucion = "DEVOLUCION"

// FuentePOS implements recon.FuenteDatos with raw SQL over the read-only POS
// connection. The POS schema is vendor-owned, so no GORM models: every query
// is explicit and every row is scanned into our own read structs. All calls
// go through the circuit breaker — when the POS link flaps, callers see the
// failure immediately instead of piling up timeouts.
type FuentePOS struct {
	db      *gorm.DB
	cb      *infra.CircuitBreaker
	timeout time.Duration
}

func NewFuentePOS(db *gorm.DB, cb *infra.CircuitBreaker, timeout time.Duration) *FuentePOS {
	return &FuentePOS{db: db, cb: cb, timeout: timeout}
}

func (f *FuentePOS) consultar(ctx context.Context, fn func(ctx context.Context) error) error {
	return f.cb.Execute(func() error {
		qctx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()
		return fn(qctx)
	})
}

// ListarTurnos returns the ids of every shift operated on the date.
func (f *FuentePOS) ListarTurnos(ctx context.Context, fecha time.Time) ([]int, error) {
	var turnos []int
	err := f.consultar(ctx, func(ctx context.Context) error {
		return f.db.WithContext(ctx).
			Raw(`SELECT id FROM turnos WHERE fecha = ? ORDER BY id`, fecha.Format("2006-01-02")).
			Scan(&turnos).Error
	})
	if err != nil {
		return nil, fmt.Errorf("pos: listar turnos de %s: %w", fecha.Format("2006-01-02"), err)
	}
	return turnos, nil
}

// ResumenTurno assembles the shift's three independently reported totals:
// the rolled-up value stored on the shift record, the movement-log sum, and
// the formal returns-ledger sum.
func (f *FuentePOS) ResumenTurno(ctx context.Context, turnoID int) (*model.ResumenTurno, error) {
	res := model.ResumenTurno{TurnoID: turnoID}
	err := f.consultar(ctx, func(ctx context.Context) error {
		row := struct {
			TotalTurno      decimal.NullDecimal
			SumaMovimientos decimal.NullDecimal
			SumaFormal      decimal.NullDecimal
		}{}
		if err := f.db.WithContext(ctx).Raw(`
			SELECT
			  t.devol_efectivo AS total_turno,
			  (SELECT SUM(m.importe) FROM movimientos m
			    WHERE m.turno_id = t.id AND m.tipo = ?)  AS suma_movimientos,
			  (SELECT SUM(d.importe) FROM devoluciones d
			    WHERE d.turno_id = t.id)                  AS suma_formal
			FROM turnos t WHERE t.id = ?`, tipoDevolucion, turnoID).
			Scan(&row).Error; err != nil {
			return err
		}
		res.TotalTurno = row.TotalTurno.Decimal
		res.SumaMovimientos = row.SumaMovimientos.Decimal
		res.SumaFormal = row.SumaFormal.Decimal
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pos: resumen del turno %d: %w", turnoID, err)
	}
	return &res, nil
}

// MovimientosDevolucion returns the shift's raw return movement rows, already
// filtered to the return category.
func (f *FuentePOS) MovimientosDevolucion(ctx context.Context, turnoID int) ([]model.MovimientoDevolucion, error) {
	var movs []model.MovimientoDevolucion
	err := f.consultar(ctx, func(ctx context.Context) error {
		return f.db.WithContext(ctx).Raw(`
			SELECT m.turno_id, m.descripcion, m.importe AS monto, m.tipo
			FROM movimientos m
			WHERE m.turno_id = ? AND m.tipo = ?
			ORDER BY m.id`, turnoID, tipoDevolucion).
			Scan(&movs).Error
	})
	if err != nil {
		return nil, fmt.Errorf("pos: movimientos del turno %d: %w", turnoID, err)
	}
	return movs, nil
}

// FacturasCanceladas returns every cancelled invoice of the date.
func (f *FuentePOS) FacturasCanceladas(ctx context.Context, fecha time.Time) ([]model.FacturaCancelada, error) {
	var facturas []model.FacturaCancelada
	err := f.consultar(ctx, func(ctx context.Context) error {
		return f.db.WithContext(ctx).Raw(`
			SELECT fa.folio, fa.turno_id, fa.total, fa.cancelada
			FROM facturas fa
			JOIN turnos t ON t.id = fa.turno_id
			WHERE t.fecha = ? AND fa.cancelada = true
			ORDER BY fa.folio`, fecha.Format("2006-01-02")).
			Scan(&facturas).Error
	})
	if err != nil {
		return nil, fmt.Errorf("pos: facturas canceladas de %s: %w", fecha.Format("2006-01-02"), err)
	}
	return facturas, nil
}

// MovimientosDevolucionDia returns the return movements of every shift of the
// date combined, in shift order.
func (f *FuentePOS) MovimientosDevolucionDia(ctx context.Context, fecha time.Time) ([]model.MovimientoDevolucion, error) {
	var movs []model.MovimientoDevolucion
	err := f.consultar(ctx, func(ctx context.Context) error {
		return f.db.WithContext(ctx).Raw(`
			SELECT m.turno_id, m.descripcion, m.importe AS monto, m.tipo
			FROM movimientos m
			JOIN turnos t ON t.id = m.turno_id
			WHERE t.fecha = ? AND m.tipo = ?
			ORDER BY m.turno_id, m.id`, fecha.Format("2006-01-02"), tipoDevolucion).
			Scan(&movs).Error
	})
	if err != nil {
		return nil, fmt.Errorf("pos: movimientos del dia %s: %w", fecha.Format("2006-01-02"), err)
	}
	return movs, nil
}
