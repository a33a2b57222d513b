package service

import (
	"context"
	"testing"
	"time"

	"cuadre/internal/dto"
	"cuadre/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// descuentoRepoFake is an in-memory DescuentoRepository preserving insertion
// order, mirroring the created_at ordering of the real store.
type descuentoRepoFake struct {
	items []*model.Descuento
}

func (r *descuentoRepoFake) Create(_ context.Context, d *model.Descuento) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	copia := *d
	r.items = append(r.items, &copia)
	return nil
}

func (r *descuentoRepoFake) FindByID(_ context.Context, id uuid.UUID) (*model.Descuento, error) {
	for _, d := range r.items {
		if d.ID == id {
			copia := *d
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *descuentoRepoFake) ListByFecha(_ context.Context, fecha time.Time) ([]model.Descuento, error) {
	var ds []model.Descuento
	for _, d := range r.items {
		if d.Fecha.Format("2006-01-02") == fecha.Format("2006-01-02") {
			ds = append(ds, *d)
		}
	}
	return ds, nil
}

func (r *descuentoRepoFake) Update(_ context.Context, d *model.Descuento) error {
	for i, existente := range r.items {
		if existente.ID == d.ID {
			copia := *d
			r.items[i] = &copia
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *descuentoRepoFake) Delete(_ context.Context, id uuid.UUID) error {
	for i, d := range r.items {
		if d.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func crearDescuento(t *testing.T, svc DescuentoService, fecha, monto, motivo string, folio int) *dto.DescuentoResponse {
	t.Helper()
	resp, err := svc.Crear(context.Background(), dto.CrearDescuentoRequest{
		Fecha:  fecha,
		Folio:  folio,
		Monto:  decimal.RequireFromString(monto),
		Motivo: motivo,
	})
	require.NoError(t, err)
	return resp
}

func TestDescuentoService_Crear(t *testing.T) {
	svc := NewDescuentoService(&descuentoRepoFake{})

	resp := crearDescuento(t, svc, "2026-08-20", "15.50", "cliente frecuente", 701)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2026-08-20", resp.Fecha)
	assert.Equal(t, 701, resp.Folio)
	assert.True(t, resp.Monto.Equal(decimal.RequireFromString("15.50")))
}

func TestDescuentoService_CrearFechaInvalida(t *testing.T) {
	svc := NewDescuentoService(&descuentoRepoFake{})

	_, err := svc.Crear(context.Background(), dto.CrearDescuentoRequest{
		Fecha:  "20-08-2026",
		Folio:  701,
		Monto:  decimal.NewFromInt(10),
		Motivo: "formato invertido",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha invalida")
}

func TestDescuentoService_ListarPorFechaFiltra(t *testing.T) {
	svc := NewDescuentoService(&descuentoRepoFake{})
	crearDescuento(t, svc, "2026-08-20", "10.00", "primero del dia", 1)
	crearDescuento(t, svc, "2026-08-20", "20.00", "segundo del dia", 2)
	crearDescuento(t, svc, "2026-08-21", "99.00", "otro dia", 3)

	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	resp, err := svc.ListarPorFecha(context.Background(), fecha)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, 1, resp[0].Folio)
	assert.Equal(t, 2, resp[1].Folio)
}

func TestDescuentoService_ActualizarParcial(t *testing.T) {
	svc := NewDescuentoService(&descuentoRepoFake{})
	creado := crearDescuento(t, svc, "2026-08-20", "10.00", "motivo original", 1)
	id := uuid.MustParse(creado.ID)

	// Only the amount changes; the motive stays.
	resp, err := svc.Actualizar(context.Background(), id, dto.ActualizarDescuentoRequest{
		Monto: decimal.RequireFromString("12.00"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Monto.Equal(decimal.RequireFromString("12.00")))
	assert.Equal(t, "motivo original", resp.Motivo)

	// Only the motive changes; the amount stays.
	resp, err = svc.Actualizar(context.Background(), id, dto.ActualizarDescuentoRequest{
		Motivo: "motivo corregido",
	})
	require.NoError(t, err)
	assert.True(t, resp.Monto.Equal(decimal.RequireFromString("12.00")))
	assert.Equal(t, "motivo corregido", resp.Motivo)
}

func TestDescuentoService_ActualizarNoEncontrado(t *testing.T) {
	svc := NewDescuentoService(&descuentoRepoFake{})

	_, err := svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarDescuentoRequest{
		Motivo: "no existe",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no encontrado")
}

func TestDescuentoService_Eliminar(t *testing.T) {
	svc := NewDescuentoService(&descuentoRepoFake{})
	creado := crearDescuento(t, svc, "2026-08-20", "10.00", "a eliminar", 1)
	id := uuid.MustParse(creado.ID)

	require.NoError(t, svc.Eliminar(context.Background(), id))

	fecha := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	resp, err := svc.ListarPorFecha(context.Background(), fecha)
	require.NoError(t, err)
	assert.Empty(t, resp)

	err = svc.Eliminar(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no encontrado")
}
