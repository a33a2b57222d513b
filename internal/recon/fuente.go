package recon

import (
	"context"
	"time"

	"cuadre/internal/model"
)

// FuenteDatos is the collaborator that reads the POS database. The engine
// receives already-typed rows; how they are fetched (SQL adapter, fixture,
// in-memory fake) is not its concern. Implementations must return rows
// already filtered to return/cancellation movements.
type FuenteDatos interface {
	// ListarTurnos returns the ids of every shift operated on the date.
	ListarTurnos(ctx context.Context, fecha time.Time) ([]int, error)
	// ResumenTurno returns the shift's three independently reported totals.
	ResumenTurno(ctx context.Context, turnoID int) (*model.ResumenTurno, error)
	// MovimientosDevolucion returns the shift's raw return movement rows.
	MovimientosDevolucion(ctx context.Context, turnoID int) ([]model.MovimientoDevolucion, error)
	// FacturasCanceladas returns every cancelled invoice of the date.
	FacturasCanceladas(ctx context.Context, fecha time.Time) ([]model.FacturaCancelada, error)
	// MovimientosDevolucionDia returns the return movements of every shift of
	// the date combined (cross-shift correlation needs the whole day at once).
	MovimientosDevolucionDia(ctx context.Context, fecha time.Time) ([]model.MovimientoDevolucion, error)
}
