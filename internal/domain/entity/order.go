package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FechaPedidoLayout es el formato exacto de los timestamps de pedidos.
// Cualquier desviación debe fallar el parseo, nunca coercionarse.
const FechaPedidoLayout = "2006-01-02 15:04:05"

// Order es una venta completada. Total debe ser igual a la suma de los
// subtotales de sus líneas; ese invariante cruza dos documentos y solo lo
// garantiza el flujo de creación de pedidos.
type Order struct {
	ID          string
	FechaPedido string // "YYYY-MM-DD HH:MM:SS"
	Total       decimal.Decimal
}

// Fecha parsea el timestamp del pedido con el layout fijo.
func (o Order) Fecha() (time.Time, error) {
	return time.Parse(FechaPedidoLayout, o.FechaPedido)
}

// Dia devuelve el prefijo fecha-solo del timestamp ("YYYY-MM-DD"), usado
// para agrupar ventas por día.
func (o Order) Dia() string {
	dia, _, _ := strings.Cut(o.FechaPedido, " ")
	return dia
}

// OrderLine es una línea de pedido: producto, cantidad y subtotal al precio
// de venta vigente en el momento de la venta.
type OrderLine struct {
	ProductCode string
	Quantity    int
	Subtotal    decimal.Decimal
}

// OrderDetail agrupa las líneas de un pedido. Se persiste en un documento
// hermano referenciado por OrderID; perder ese documento produce joins
// vacíos, nunca un fallo de reporte.
type OrderDetail struct {
	OrderID string
	Lines   []OrderLine
}
