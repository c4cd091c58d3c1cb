package reports

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/panaderia-pro/internal/domain/entity"
	"github.com/tu-usuario/panaderia-pro/internal/domain/inventory"
)

// FinancialAnalysis es el análisis financiero del negocio: cifras de ventas
// acumuladas más una foto del inventario actual (esta última no deriva del
// cruce de líneas vendidas).
type FinancialAnalysis struct {
	TotalVentas     decimal.Decimal
	CostoVentas     decimal.Decimal // COGS
	GananciaBruta   decimal.Decimal
	MargenBruto     decimal.Decimal // porcentaje; 0 si no hay ventas
	ValorInventario decimal.Decimal
	CostoInventario decimal.Decimal
}

// AnalyzeFinances cruza cada línea vendida con el precio de proveedor de su
// producto. Si existieran códigos duplicados en el catálogo gana la primera
// coincidencia; líneas con código sin producto no aportan costo.
func AnalyzeFinances(pedidos []entity.Order, detalles []entity.OrderDetail, productos []entity.Product) FinancialAnalysis {
	totalVentas := decimal.Zero
	for _, p := range pedidos {
		totalVentas = totalVentas.Add(p.Total)
	}

	costoVentas := decimal.Zero
	for _, d := range detalles {
		for _, l := range d.Lines {
			for _, p := range productos {
				if p.Code == l.ProductCode {
					costoVentas = costoVentas.Add(
						p.SupplierPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
					break
				}
			}
		}
	}

	ganancia := totalVentas.Sub(costoVentas)
	margen := decimal.Zero
	if totalVentas.IsPositive() {
		margen = ganancia.Div(totalVentas).Mul(decimal.NewFromInt(100))
	}

	return FinancialAnalysis{
		TotalVentas:     totalVentas,
		CostoVentas:     costoVentas,
		GananciaBruta:   ganancia,
		MargenBruto:     margen,
		ValorInventario: inventory.Value(productos),
		CostoInventario: inventory.Cost(productos),
	}
}
