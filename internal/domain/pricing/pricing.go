// Package pricing contiene los cálculos puros de precios y márgenes
// (servicios de dominio, totales sobre entrada bien tipada).
package pricing

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// MarginPercent calcula el margen de ganancia en porcentaje:
// (venta − costo) / costo × 100. Con costo cero devuelve 0 (guarda
// explícita de división, no un error).
func MarginPercent(precioVenta, precioCosto decimal.Decimal) decimal.Decimal {
	if precioCosto.IsZero() {
		return decimal.Zero
	}
	return precioVenta.Sub(precioCosto).Div(precioCosto).Mul(cien)
}

// PriceWithTax devuelve el precio con impuestos incluidos: p × (1 + tasa).
func PriceWithTax(precio, tasa decimal.Decimal) decimal.Decimal {
	return precio.Mul(decimal.NewFromInt(1).Add(tasa))
}

// PriceWithoutTax es la inversa de PriceWithTax: p / (1 + tasa).
// Propiedad: PriceWithoutTax(PriceWithTax(p, r), r) ≈ p salvo redondeo.
func PriceWithoutTax(precioConImpuesto, tasa decimal.Decimal) decimal.Decimal {
	return precioConImpuesto.Div(decimal.NewFromInt(1).Add(tasa))
}
