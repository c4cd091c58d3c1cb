// Package inventory contiene las valoraciones puras del inventario.
package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
)

// Value calcula el valor del inventario a precio de venta:
// Σ stock × precio_venta.
func Value(productos []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range productos {
		total = total.Add(p.SalePrice.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}

// Cost calcula el costo del inventario a precio de proveedor:
// Σ stock × precio_proveedor.
func Cost(productos []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range productos {
		total = total.Add(p.SupplierPrice.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return total
}

// LowStock devuelve los productos con stock por debajo del umbral,
// preservando el orden de entrada.
func LowStock(productos []entity.Product, umbral int) []entity.Product {
	var bajos []entity.Product
	for _, p := range productos {
		if p.Stock < umbral {
			bajos = append(bajos, p)
		}
	}
	return bajos
}
