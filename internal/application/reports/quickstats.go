package reports

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/internal/domain/inventory"
)

// CategoryCount es el resumen por categoría del dashboard: número de
// productos (no unidades) y valor a precio de venta.
type CategoryCount struct {
	Categoria string
	Productos int
	Valor     decimal.Decimal
}

// QuickStats son las estadísticas rápidas del dashboard. A diferencia del
// reporte de inventario, el conteo de stock bajo usa el umbral configurable.
type QuickStats struct {
	TotalProductos     int
	TotalStock         int
	ValorInventario    decimal.Decimal
	ProductosStockBajo int
	PorCategoria       []CategoryCount
}

// ComputeQuickStats calcula el dashboard con el umbral mínimo de stock de la
// configuración.
func ComputeQuickStats(productos []entity.Product, stockMinimo int) QuickStats {
	stats := QuickStats{
		TotalProductos:     len(productos),
		ValorInventario:    inventory.Value(productos),
		ProductosStockBajo: len(inventory.LowStock(productos, stockMinimo)),
	}

	indice := make(map[string]int)
	for _, p := range productos {
		stats.TotalStock += p.Stock
		valor := p.SalePrice.Mul(decimal.NewFromInt(int64(p.Stock)))

		i, ok := indice[p.Category]
		if !ok {
			i = len(stats.PorCategoria)
			indice[p.Category] = i
			stats.PorCategoria = append(stats.PorCategoria, CategoryCount{Categoria: p.Category})
		}
		stats.PorCategoria[i].Productos++
		stats.PorCategoria[i].Valor = stats.PorCategoria[i].Valor.Add(valor)
	}

	return stats
}
