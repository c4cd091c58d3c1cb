package jsonstore_test

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/internal/domain/repository"
	"github.com/tu-usuario/panaderia-pro/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/panaderia-pro/pkg/logger"
)

func TestOrderStore_SiembraVaciaCuandoNoExiste(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	store := jsonstore.NewOrderStore(paths, logger.Nop())

	res, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, repository.LoadSeeded, res.Status)
	assert.Empty(t, res.Orders)

	_, err = os.Stat(paths.Orders())
	require.NoError(t, err)

	res, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, repository.LoadOK, res.Status)
}

func TestOrderStore_CorruptoResiembraVacio(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	store := jsonstore.NewOrderStore(paths, logger.Nop())
	require.NoError(t, os.MkdirAll(paths.OrdersDir(), 0o755))
	require.NoError(t, os.WriteFile(paths.Orders(), []byte("¡¡¡"), 0o644))

	res, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, repository.LoadSeeded, res.Status)
	assert.Empty(t, res.Orders)
}

func TestOrderStore_GuardarYRecargar(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	store := jsonstore.NewOrderStore(paths, logger.Nop())

	pedidos := []entity.Order{
		{ID: "abc-123", FechaPedido: "2026-08-29 10:30:00", Total: decimal.NewFromFloat(12.50)},
	}
	require.NoError(t, store.Save(pedidos))

	res, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, repository.LoadOK, res.Status)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "abc-123", res.Orders[0].ID)
	assert.Equal(t, "2026-08-29 10:30:00", res.Orders[0].FechaPedido)
	assert.True(t, res.Orders[0].Total.Equal(decimal.NewFromFloat(12.50)))
}

func TestDetailStore_GuardarYRecargar(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	store := jsonstore.NewDetailStore(paths, logger.Nop())

	detalles := []entity.OrderDetail{{
		OrderID: "abc-123",
		Lines: []entity.OrderLine{
			{ProductCode: "PAN-001", Quantity: 5, Subtotal: decimal.NewFromFloat(7.50)},
			{ProductCode: "PASTEL-001", Quantity: 1, Subtotal: decimal.NewFromFloat(25.00)},
		},
	}}
	require.NoError(t, store.Save(detalles))

	res, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, repository.LoadOK, res.Status)
	require.Len(t, res.Details, 1)
	require.Len(t, res.Details[0].Lines, 2)
	assert.Equal(t, "PAN-001", res.Details[0].Lines[0].ProductCode)
	assert.Equal(t, 5, res.Details[0].Lines[0].Quantity)
	assert.True(t, res.Details[0].Lines[1].Subtotal.Equal(decimal.NewFromInt(25)))
}

func TestDetailStore_SiembraVaciaCuandoNoExiste(t *testing.T) {
	paths := jsonstore.NewPaths(t.TempDir())
	store := jsonstore.NewDetailStore(paths, logger.Nop())

	res, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, repository.LoadSeeded, res.Status)
	assert.Empty(t, res.Details)
}
