package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo con stock y precios.
// Code es único dentro del catálogo; los productos nunca se eliminan
// físicamente, solo se decrementa su stock al vender.
type Product struct {
	Code          string // codigo_producto
	Name          string
	Category      string // etiqueta libre: "pan", "pastel", "otro"...
	Description   string
	Supplier      string
	Stock         int             // cantidad_en_stock, nunca negativo
	SalePrice     decimal.Decimal // precio_venta
	SupplierPrice decimal.Decimal // precio_proveedor (costo de adquisición)
}
