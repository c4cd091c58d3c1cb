package reports

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/internal/domain/inventory"
)

// umbralStockBajoReporte es el umbral literal del reporte de inventario.
// Es deliberadamente distinto del umbral configurable que usa QuickStats;
// ambos call sites conservan su comportamiento histórico.
const umbralStockBajoReporte = 5

// CategoryBreakdown es el desglose de stock y valor por categoría.
type CategoryBreakdown struct {
	Categoria string
	Stock     int
	Valor     decimal.Decimal
}

// InventoryAnalysis es el análisis del estado del inventario.
type InventoryAnalysis struct {
	TotalProductos  int
	TotalStock      int
	ValorInventario decimal.Decimal
	StockBajo       []entity.Product
	PorCategoria    []CategoryBreakdown
}

// AnalyzeInventory calcula totales, desglose por categoría (en orden de
// primer encuentro) y la sublista de stock bajo.
func AnalyzeInventory(productos []entity.Product) InventoryAnalysis {
	analisis := InventoryAnalysis{
		TotalProductos:  len(productos),
		ValorInventario: inventory.Value(productos),
		StockBajo:       inventory.LowStock(productos, umbralStockBajoReporte),
	}

	indice := make(map[string]int)
	for _, p := range productos {
		analisis.TotalStock += p.Stock
		valor := p.SalePrice.Mul(decimal.NewFromInt(int64(p.Stock)))

		i, ok := indice[p.Category]
		if !ok {
			i = len(analisis.PorCategoria)
			indice[p.Category] = i
			analisis.PorCategoria = append(analisis.PorCategoria, CategoryBreakdown{Categoria: p.Category})
		}
		analisis.PorCategoria[i].Stock += p.Stock
		analisis.PorCategoria[i].Valor = analisis.PorCategoria[i].Valor.Add(valor)
	}

	return analisis
}
