// Package reports contiene el motor de agregación: proyecciones de solo
// lectura sobre el modelo de dominio (ventas, inventario, más vendidos,
// análisis financiero, filtro por período y exportación).
package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
)

// SalesSummary es el resumen de ventas del negocio.
type SalesSummary struct {
	TotalVentas       decimal.Decimal
	TotalPedidos      int
	PromedioPorPedido decimal.Decimal // 0 cuando no hay pedidos (guarda, no error)
	DiasConVentas     int
}

// SummarizeSales calcula el resumen sobre la colección de pedidos.
func SummarizeSales(pedidos []entity.Order) SalesSummary {
	total := decimal.Zero
	dias := make(map[string]struct{})
	for _, p := range pedidos {
		total = total.Add(p.Total)
		dias[p.Dia()] = struct{}{}
	}

	promedio := decimal.Zero
	if len(pedidos) > 0 {
		promedio = total.Div(decimal.NewFromInt(int64(len(pedidos))))
	}

	return SalesSummary{
		TotalVentas:       total,
		TotalPedidos:      len(pedidos),
		PromedioPorPedido: promedio,
		DiasConVentas:     len(dias),
	}
}

// DailySales es el total vendido en un día calendario.
type DailySales struct {
	Fecha string // "YYYY-MM-DD"
	Total decimal.Decimal
}

// SalesByDate agrupa los pedidos por el prefijo fecha-solo de su timestamp y
// suma el total por día, en orden ascendente de fecha.
func SalesByDate(pedidos []entity.Order) []DailySales {
	porFecha := make(map[string]decimal.Decimal)
	for _, p := range pedidos {
		dia := p.Dia()
		porFecha[dia] = porFecha[dia].Add(p.Total)
	}

	out := make([]DailySales, 0, len(porFecha))
	for fecha, total := range porFecha {
		out = append(out, DailySales{Fecha: fecha, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha < out[j].Fecha })
	return out
}
