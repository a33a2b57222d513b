package recon

import (
	"testing"

	"cuadre/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtraerFolio(t *testing.T) {
	casos := []struct {
		descripcion string
		folio       int
		ok          bool
	}{
		{"Devol #501", 501, true},
		{"DEVOLUCION PARCIAL #12345 mesa 4", 12345, true},
		{"#7", 7, true},
		{"dos tokens #10 y #20", 10, true}, // first match wins
		{"sin folio", 0, false},
		{"numeral suelto #", 0, false},
		{"", 0, false},
	}
	for _, c := range casos {
		folio, ok := ExtraerFolio(c.descripcion)
		assert.Equal(t, c.ok, ok, c.descripcion)
		assert.Equal(t, c.folio, folio, c.descripcion)
	}
}

func factura(folio, turno int, total string, cancelada bool) model.FacturaCancelada {
	return model.FacturaCancelada{
		Folio:     folio,
		TurnoID:   turno,
		Total:     decimal.RequireFromString(total),
		Cancelada: cancelada,
	}
}

func TestCorrelacionarFoliosDuplicacionEntreTurnos(t *testing.T) {
	// Partial return of 150 in shift 10, then the POS re-emits 100 against
	// the same folio when the invoice is cancelled in shift 12.
	facturas := []model.FacturaCancelada{factura(701, 10, "200.00", true)}
	movs := []model.MovimientoDevolucion{
		mov(10, "Devol #701", "150.00"),
		mov(12, "Devol #701", "100.00"),
	}

	h := CorrelacionarFolios(facturas, movs)
	require.NotNil(t, h)
	assert.Equal(t, DuplicacionEntreTurnos, h.Tipo)
	assert.Equal(t, TurnoGlobal, h.TurnoID)
	assert.True(t, h.Monto.Equal(decimal.RequireFromString("50.00")), h.Monto.String())

	require.Len(t, h.Detalle, 1)
	d := h.Detalle[0]
	assert.Equal(t, 701, d.Folio)
	assert.True(t, d.TotalFactura.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, d.SumaMovimientos.Equal(decimal.RequireFromString("250.00")))
	assert.True(t, d.Monto.Equal(decimal.RequireFromString("50.00")))
}

func TestCorrelacionarFoliosSoloExcesoNuncaFaltante(t *testing.T) {
	facturas := []model.FacturaCancelada{
		factura(701, 10, "200.00", true), // movements sum below total
		factura(702, 10, "80.00", true),  // movements sum exactly equal
	}
	movs := []model.MovimientoDevolucion{
		mov(10, "Devol #701", "120.00"),
		mov(11, "Devol #702", "80.00"),
	}
	assert.Nil(t, CorrelacionarFolios(facturas, movs))
}

func TestCorrelacionarFoliosSinTokenNoSeAtribuye(t *testing.T) {
	facturas := []model.FacturaCancelada{factura(900, 10, "50.00", true)}
	movs := []model.MovimientoDevolucion{
		mov(10, "devolucion sin numero", "500.00"),
	}
	// Movement has no folio token: excluded, invoice sees zero, never flagged.
	assert.Nil(t, CorrelacionarFolios(facturas, movs))
}

func TestCorrelacionarFoliosIgnoraFacturasNoCanceladas(t *testing.T) {
	facturas := []model.FacturaCancelada{factura(701, 10, "10.00", false)}
	movs := []model.MovimientoDevolucion{mov(10, "Devol #701", "100.00")}
	assert.Nil(t, CorrelacionarFolios(facturas, movs))
}

func TestCorrelacionarFoliosDetalleOrdenadoPorFolio(t *testing.T) {
	facturas := []model.FacturaCancelada{
		factura(920, 11, "10.00", true),
		factura(910, 10, "10.00", true),
	}
	movs := []model.MovimientoDevolucion{
		mov(11, "Devol #920", "30.00"),
		mov(10, "Devol #910", "25.00"),
	}
	h := CorrelacionarFolios(facturas, movs)
	require.NotNil(t, h)
	require.Len(t, h.Detalle, 2)
	assert.Equal(t, 910, h.Detalle[0].Folio)
	assert.Equal(t, 920, h.Detalle[1].Folio)
	assert.True(t, h.Monto.Equal(decimal.RequireFromString("35.00")))
}
