package recon

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Generador computes daily reconciliation reports. Stateless apart from the
// injected data source: each call is an independent, side-effect-free
// snapshot, so callers may run dates in parallel without coordination.
type Generador struct {
	fuente FuenteDatos
}

func NewGenerador(fuente FuenteDatos) *Generador {
	return &Generador{fuente: fuente}
}

// GenerarReporteDia computes the full report for one date: per-shift
// reconciliation for every turno, then the day-wide cross-shift correlation,
// merged in shift order with the cross-shift finding last.
//
// Best-effort semantics: a shift whose data cannot be fetched contributes no
// findings and is recorded in TurnosConError; the report itself never fails.
// A day with zero shifts yields an empty report.
func (g *Generador) GenerarReporteDia(ctx context.Context, fecha time.Time) *ReporteDia {
	rep := &ReporteDia{
		Fecha:      fecha,
		MontoTotal: decimal.Zero,
		Hallazgos:  []Hallazgo{},
	}

	turnos, err := g.fuente.ListarTurnos(ctx, fecha)
	if err != nil {
		log.Warn().Err(err).Time("fecha", fecha).Msg("recon: no se pudieron listar los turnos")
		// Nothing was checked: mark the whole day unverified so callers can
		// tell this apart from a genuinely clean day.
		rep.ErrorDia = "no se pudieron listar los turnos: " + err.Error()
		return rep
	}

	for _, turnoID := range turnos {
		hallazgos, err := g.cuadrarTurno(ctx, turnoID)
		if err != nil {
			log.Warn().Err(err).Int("turno", turnoID).Msg("recon: turno omitido, datos no disponibles")
			rep.TurnosConError = append(rep.TurnosConError, turnoID)
			continue
		}
		rep.Hallazgos = append(rep.Hallazgos, hallazgos...)
	}

	if h := g.correlacionarDia(ctx, fecha); h != nil {
		rep.Hallazgos = append(rep.Hallazgos, *h)
	}

	for _, h := range rep.Hallazgos {
		rep.MontoTotal = rep.MontoTotal.Add(h.Monto)
	}
	rep.HayBugs = rep.MontoTotal.GreaterThan(Tolerancia)
	return rep
}

func (g *Generador) cuadrarTurno(ctx context.Context, turnoID int) ([]Hallazgo, error) {
	resumen, err := g.fuente.ResumenTurno(ctx, turnoID)
	if err != nil {
		return nil, err
	}
	movs, err := g.fuente.MovimientosDevolucion(ctx, turnoID)
	if err != nil {
		return nil, err
	}

	dup := DetectarDuplicados(AgruparMovimientos(movs))
	return CuadrarTurno(*resumen, dup), nil
}

func (g *Generador) correlacionarDia(ctx context.Context, fecha time.Time) *Hallazgo {
	facturas, err := g.fuente.FacturasCanceladas(ctx, fecha)
	if err != nil {
		log.Warn().Err(err).Time("fecha", fecha).Msg("recon: correlacion de folios omitida, facturas no disponibles")
		return nil
	}
	movs, err := g.fuente.MovimientosDevolucionDia(ctx, fecha)
	if err != nil {
		log.Warn().Err(err).Time("fecha", fecha).Msg("recon: correlacion de folios omitida, movimientos no disponibles")
		return nil
	}
	return CorrelacionarFolios(facturas, movs)
}
