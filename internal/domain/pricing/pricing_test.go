package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/panaderia-pro/internal/domain/pricing"
)

func TestMarginPercent(t *testing.T) {
	margen := pricing.MarginPercent(decimal.NewFromFloat(1.50), decimal.NewFromFloat(0.75))
	assert.True(t, margen.Equal(decimal.NewFromInt(100)),
		"vender a 1.50 lo que cuesta 0.75 es un margen del 100%%, se obtuvo %s", margen)
}

func TestMarginPercent_CostoCeroDevuelveCero(t *testing.T) {
	for _, venta := range []float64{0, 1, 99.99, 12345.67} {
		margen := pricing.MarginPercent(decimal.NewFromFloat(venta), decimal.Zero)
		assert.True(t, margen.IsZero(),
			"con costo cero el margen es 0 por guarda explícita, no un error (venta=%v)", venta)
	}
}

func TestPriceWithTax(t *testing.T) {
	con := pricing.PriceWithTax(decimal.NewFromInt(100), decimal.NewFromFloat(0.19))
	assert.True(t, con.Equal(decimal.NewFromInt(119)), "100 + IVA 19%% = 119, se obtuvo %s", con)
}

func TestPriceWithoutTax_InversaDeConImpuesto(t *testing.T) {
	precios := []float64{0, 0.01, 1.50, 25.00, 999.99, 123456.78}
	tasas := []float64{0, 0.05, 0.19, 0.5, 0.99}

	for _, p := range precios {
		for _, r := range tasas {
			precio := decimal.NewFromFloat(p)
			tasa := decimal.NewFromFloat(r)

			ida := pricing.PriceWithTax(precio, tasa)
			vuelta := pricing.PriceWithoutTax(ida, tasa)

			f, _ := vuelta.Sub(precio).Abs().Float64()
			require.Less(t, f, 1e-9,
				"el round-trip con/sin impuesto debe recuperar el precio (p=%v r=%v)", p, r)
		}
	}
}
