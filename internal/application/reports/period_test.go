package reports_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pro/internal/application/reports"
	"github.com/tu-usuario/panaderia-pro/internal/domain"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
)

func TestParseFechaInicio(t *testing.T) {
	fecha, err := reports.ParseFechaInicio("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, fecha.Year())
	assert.Equal(t, time.August, fecha.Month())
	assert.Equal(t, 15, fecha.Day())
}

func TestParseFechaInicio_FormatoInvalido(t *testing.T) {
	for _, s := range []string{"", "15/08/2026", "2026-8-15", "ayer", "2026-08-15 10:00:00"} {
		_, err := reports.ParseFechaInicio(s)
		assert.ErrorIs(t, err, domain.ErrFechaInvalida, "entrada %q", s)
	}
}

func TestFilterByWindow_Ultimos7Dias(t *testing.T) {
	ahora := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	pedidos := []entity.Order{
		pedido("reciente", "2026-08-26 09:00:00", 10),
		pedido("viejo", "2026-08-19 09:00:00", 20),
	}

	dentro, err := reports.FilterByWindow(pedidos, reports.Ultimos7Dias, ahora)

	require.NoError(t, err)
	require.Len(t, dentro, 1)
	assert.Equal(t, "reciente", dentro[0].ID,
		"un pedido de hace 3 días entra en la ventana de 7, uno de hace 10 no")
}

func TestWindowStart_EsteMes(t *testing.T) {
	ahora := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	inicio, err := reports.WindowStart(reports.EsteMes, ahora)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), inicio)
}

func TestWindowStart_VentanaDesconocida(t *testing.T) {
	_, err := reports.WindowStart(reports.Window(99), time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFilterByRange_ExtremosInclusivos(t *testing.T) {
	inicio := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	pedidos := []entity.Order{
		pedido("en-inicio", "2026-08-01 00:00:00", 1),
		pedido("en-fin", "2026-08-10 00:00:00", 2),
		pedido("antes", "2026-07-31 23:59:59", 3),
		pedido("despues", "2026-08-10 00:00:01", 4),
	}

	dentro, err := reports.FilterByRange(pedidos, inicio, fin)

	require.NoError(t, err)
	require.Len(t, dentro, 2)
	assert.Equal(t, "en-inicio", dentro[0].ID)
	assert.Equal(t, "en-fin", dentro[1].ID)
}

func TestFilterByRange_FechaAlmacenadaInvalida(t *testing.T) {
	pedidos := []entity.Order{pedido("p1", "no es una fecha", 1)}

	_, err := reports.FilterByRange(pedidos, time.Now().AddDate(0, 0, -7), time.Now())

	require.ErrorIs(t, err, domain.ErrFechaInvalida)
	assert.Contains(t, err.Error(), "p1", "el error identifica el pedido con el dato corrupto")
}
