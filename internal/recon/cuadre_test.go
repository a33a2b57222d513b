package recon

import (
	"testing"

	"cuadre/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumen(turno int, total, sumaLog, sumaFormal string) model.ResumenTurno {
	return model.ResumenTurno{
		TurnoID:         turno,
		TotalTurno:      decimal.RequireFromString(total),
		SumaMovimientos: decimal.RequireFromString(sumaLog),
		SumaFormal:      decimal.RequireFromString(sumaFormal),
	}
}

func TestCuadrarTurnoSinDiferencias(t *testing.T) {
	movs := []model.MovimientoDevolucion{mov(5, "Devol #100", "30.00")}
	dup := DetectarDuplicados(AgruparMovimientos(movs))

	hallazgos := CuadrarTurno(resumen(5, "30.00", "30.00", "30.00"), dup)
	assert.Empty(t, hallazgos)
}

func TestCuadrarTurnoLimiteDeTolerancia(t *testing.T) {
	movs := []model.MovimientoDevolucion{mov(5, "Devol #100", "30.00")}
	dup := DetectarDuplicados(AgruparMovimientos(movs))

	// Exactly 0.01 over: absorbed by tolerance, no finding.
	hallazgos := CuadrarTurno(resumen(5, "30.01", "30.00", "30.00"), dup)
	assert.Empty(t, hallazgos)

	// 0.011 over: finding.
	hallazgos = CuadrarTurno(resumen(5, "30.011", "30.00", "30.00"), dup)
	require.Len(t, hallazgos, 1)
	assert.Equal(t, TurnoExcedeLog, hallazgos[0].Tipo)
	assert.True(t, hallazgos[0].Monto.Equal(decimal.RequireFromString("0.011")))
}

func TestCuadrarTurnoOrdenFijoDeHallazgos(t *testing.T) {
	// Shift with all three defects at once.
	movs := []model.MovimientoDevolucion{
		mov(7, "Devol #200", "40.00"),
		mov(7, "Devol #200", "40.00"),
	}
	dup := DetectarDuplicados(AgruparMovimientos(movs))

	// rolled-up 120 vs log 80 → TurnoExcedeLog 40
	// duplicate excess 40
	// dedup 40 vs formal 0 → sin formalizar 40
	hallazgos := CuadrarTurno(resumen(7, "120.00", "80.00", "0.00"), dup)
	require.Len(t, hallazgos, 3)
	assert.Equal(t, TurnoExcedeLog, hallazgos[0].Tipo)
	assert.Equal(t, DuplicadosEnLog, hallazgos[1].Tipo)
	assert.Equal(t, DevolucionSinFormalizar, hallazgos[2].Tipo)
	for _, h := range hallazgos {
		assert.True(t, h.Monto.Equal(decimal.RequireFromString("40.00")), string(h.Tipo))
	}
}

func TestCuadrarTurnoAtribucionDentroDeBanda(t *testing.T) {
	movs := []model.MovimientoDevolucion{
		mov(3, "Devol #301", "25.00"), // within ±0.02 of the 25.01 difference
		mov(3, "Devol #302", "60.00"), // outside the band
	}
	dup := DetectarDuplicados(AgruparMovimientos(movs))

	hallazgos := CuadrarTurno(resumen(3, "110.01", "85.00", "85.00"), dup)
	require.Len(t, hallazgos, 1)
	h := hallazgos[0]
	assert.Equal(t, TurnoExcedeLog, h.Tipo)
	require.Len(t, h.Detalle, 1)
	assert.Equal(t, "Devol #301", h.Detalle[0].Descripcion)
}

func TestCuadrarTurnoEscenarioDuplicadoCompleto(t *testing.T) {
	// Same description+amount twice; rolled-up matches the inflated log and
	// the formal ledger matches the de-duplicated value: the only defect is
	// the duplication itself.
	movs := []model.MovimientoDevolucion{
		mov(100, "Devol #501", "50.00"),
		mov(100, "Devol #501", "50.00"),
	}
	dup := DetectarDuplicados(AgruparMovimientos(movs))

	hallazgos := CuadrarTurno(resumen(100, "100.00", "100.00", "50.00"), dup)
	require.Len(t, hallazgos, 1)
	assert.Equal(t, DuplicadosEnLog, hallazgos[0].Tipo)
	assert.True(t, hallazgos[0].Monto.Equal(decimal.RequireFromString("50.00")))
}

func TestCuadrarTurnoDetalleDuplicadoLlevaMontoUnitario(t *testing.T) {
	// Triplicated entry: the detail line must carry both the unit amount and
	// the excess, not one field meaning different things.
	movs := []model.MovimientoDevolucion{
		mov(11, "Devol #502", "50.00"),
		mov(11, "Devol #502", "50.00"),
		mov(11, "Devol #502", "50.00"),
	}
	dup := DetectarDuplicados(AgruparMovimientos(movs))

	hallazgos := CuadrarTurno(resumen(11, "150.00", "150.00", "50.00"), dup)
	require.Len(t, hallazgos, 1)
	require.Equal(t, DuplicadosEnLog, hallazgos[0].Tipo)
	require.Len(t, hallazgos[0].Detalle, 1)

	d := hallazgos[0].Detalle[0]
	assert.Equal(t, 3, d.Cuenta)
	assert.True(t, d.MontoUnitario.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, d.Monto.Equal(decimal.RequireFromString("100.00")))
}

func TestCuadrarTurnoFaltanteNoEsHallazgo(t *testing.T) {
	// Formal ledger above the de-duplicated log, rolled-up below the log:
	// negative differences never fire.
	movs := []model.MovimientoDevolucion{mov(9, "Devol #400", "20.00")}
	dup := DetectarDuplicados(AgruparMovimientos(movs))

	hallazgos := CuadrarTurno(resumen(9, "10.00", "20.00", "35.00"), dup)
	assert.Empty(t, hallazgos)
}
