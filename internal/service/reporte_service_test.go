package service

import (
	"context"
	"testing"
	"time"

	"cuadre/internal/model"
	"cuadre/internal/recon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fuenteVacia is a data source for a day with no shifts at all.
type fuenteVacia struct{}

func (fuenteVacia) ListarTurnos(context.Context, time.Time) ([]int, error) { return nil, nil }
func (fuenteVacia) ResumenTurno(context.Context, int) (*model.ResumenTurno, error) {
	return &model.ResumenTurno{}, nil
}
func (fuenteVacia) MovimientosDevolucion(context.Context, int) ([]model.MovimientoDevolucion, error) {
	return nil, nil
}
func (fuenteVacia) FacturasCanceladas(context.Context, time.Time) ([]model.FacturaCancelada, error) {
	return nil, nil
}
func (fuenteVacia) MovimientosDevolucionDia(context.Context, time.Time) ([]model.MovimientoDevolucion, error) {
	return nil, nil
}

// fuenteConDuplicado reports one shift whose log holds a duplicated entry.
type fuenteConDuplicado struct{ fuenteVacia }

func (fuenteConDuplicado) ListarTurnos(context.Context, time.Time) ([]int, error) {
	return []int{1}, nil
}

func (fuenteConDuplicado) ResumenTurno(_ context.Context, turnoID int) (*model.ResumenTurno, error) {
	return &model.ResumenTurno{
		TurnoID:         turnoID,
		TotalTurno:      decimal.NewFromInt(100),
		SumaMovimientos: decimal.NewFromInt(200),
		SumaFormal:      decimal.NewFromInt(100),
	}, nil
}

func (fuenteConDuplicado) MovimientosDevolucion(_ context.Context, turnoID int) ([]model.MovimientoDevolucion, error) {
	m := model.MovimientoDevolucion{TurnoID: turnoID, Descripcion: "DEV #77", Monto: decimal.NewFromInt(100)}
	return []model.MovimientoDevolucion{m, m}, nil
}

func TestReporteService_SinRedis(t *testing.T) {
	svc := NewReporteService(recon.NewGenerador(fuenteVacia{}), nil)
	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	rep, err := svc.Reporte(context.Background(), fecha)
	require.NoError(t, err)
	assert.False(t, rep.HayBugs)
	assert.Empty(t, rep.Hallazgos)
}

func TestReporteService_ResumenLimpio(t *testing.T) {
	svc := NewReporteService(recon.NewGenerador(fuenteVacia{}), nil)
	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Resumen(context.Background(), fecha)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-20", resp.Fecha)
	assert.Equal(t, "OK", resp.Resumen)
	assert.True(t, resp.MontoTotal.IsZero())
}

func TestReporteService_ResumenConDuplicado(t *testing.T) {
	svc := NewReporteService(recon.NewGenerador(fuenteConDuplicado{}), nil)
	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Resumen(context.Background(), fecha)
	require.NoError(t, err)
	assert.Contains(t, resp.Resumen, "DUP$100")
	assert.True(t, resp.MontoTotal.Equal(decimal.NewFromInt(100)))
}

func TestReporteService_Detalle(t *testing.T) {
	svc := NewReporteService(recon.NewGenerador(fuenteConDuplicado{}), nil)
	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	resp, err := svc.Detalle(context.Background(), fecha)
	require.NoError(t, err)
	assert.Contains(t, resp.Detalle, "DEV #77")
	assert.Contains(t, resp.Detalle, "TOTAL: $100.00")
}

func TestReporteService_PDF(t *testing.T) {
	svc := NewReporteService(recon.NewGenerador(fuenteConDuplicado{}), nil)
	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	data, err := svc.PDF(context.Background(), fecha)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestEsCacheable(t *testing.T) {
	assert.True(t, esCacheable(time.Now().AddDate(0, 0, -1)))
	assert.False(t, esCacheable(time.Now()))
	assert.False(t, esCacheable(time.Now().AddDate(0, 0, 1)))
}
