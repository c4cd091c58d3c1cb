package reports_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pro/internal/application/reports"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
)

func catalogoDePrueba() []entity.Product {
	return []entity.Product{
		{Code: "PAN-001", Category: "pan", Stock: 50, SalePrice: decimal.NewFromFloat(1.50)},
		{Code: "PASTEL-001", Category: "pastel", Stock: 3, SalePrice: decimal.NewFromFloat(25.00)},
		{Code: "PAN-002", Category: "pan", Stock: 20, SalePrice: decimal.NewFromFloat(2.00)},
	}
}

func TestAnalyzeInventory(t *testing.T) {
	analisis := reports.AnalyzeInventory(catalogoDePrueba())

	assert.Equal(t, 3, analisis.TotalProductos)
	assert.Equal(t, 73, analisis.TotalStock)
	// 50×1.50 + 3×25.00 + 20×2.00 = 190.00
	assert.True(t, analisis.ValorInventario.Equal(decimal.NewFromInt(190)),
		"se obtuvo %s", analisis.ValorInventario)

	require.Len(t, analisis.StockBajo, 1)
	assert.Equal(t, "PASTEL-001", analisis.StockBajo[0].Code,
		"con stock 3 queda bajo el umbral fijo de 5 del reporte")
}

func TestAnalyzeInventory_CategoriasEnOrdenDePrimerEncuentro(t *testing.T) {
	analisis := reports.AnalyzeInventory(catalogoDePrueba())

	require.Len(t, analisis.PorCategoria, 2)
	assert.Equal(t, "pan", analisis.PorCategoria[0].Categoria)
	assert.Equal(t, 70, analisis.PorCategoria[0].Stock)
	assert.True(t, analisis.PorCategoria[0].Valor.Equal(decimal.NewFromInt(115)),
		"se obtuvo %s", analisis.PorCategoria[0].Valor)
	assert.Equal(t, "pastel", analisis.PorCategoria[1].Categoria)
	assert.Equal(t, 3, analisis.PorCategoria[1].Stock)
}

func TestAnalyzeInventory_CatalogoVacio(t *testing.T) {
	analisis := reports.AnalyzeInventory(nil)

	assert.Zero(t, analisis.TotalProductos)
	assert.Zero(t, analisis.TotalStock)
	assert.True(t, analisis.ValorInventario.IsZero())
	assert.Empty(t, analisis.StockBajo)
	assert.Empty(t, analisis.PorCategoria)
}

func TestComputeQuickStats(t *testing.T) {
	stats := reports.ComputeQuickStats(catalogoDePrueba(), 21)

	assert.Equal(t, 3, stats.TotalProductos)
	assert.Equal(t, 73, stats.TotalStock)
	assert.Equal(t, 2, stats.ProductosStockBajo,
		"el dashboard usa el umbral configurable, no el fijo del reporte")

	require.Len(t, stats.PorCategoria, 2)
	assert.Equal(t, "pan", stats.PorCategoria[0].Categoria)
	assert.Equal(t, 2, stats.PorCategoria[0].Productos,
		"el dashboard cuenta productos por categoría, no unidades")
	assert.Equal(t, 1, stats.PorCategoria[1].Productos)
}
