// Package money centraliza el redondeo y el formato de valores monetarios.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CO"))

// Format devuelve el valor como moneda con separadores de miles según el
// locale es-CO, ej: "COP $1.234,50".
func Format(v decimal.Decimal, moneda string) string {
	f, _ := v.Float64()
	return printer.Sprintf("%s $%v", moneda, number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Round redondea un valor monetario al número de decimales configurado.
func Round(v decimal.Decimal, decimales int32) decimal.Decimal {
	return v.Round(decimales)
}
