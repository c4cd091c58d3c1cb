package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/panaderia-pro/pkg/money"
)

func TestFormat(t *testing.T) {
	s := money.Format(decimal.NewFromFloat(1234.5), "COP")

	assert.Contains(t, s, "COP $")
	assert.Contains(t, s, "1.234,50",
		"el locale es-CO usa punto de miles y coma decimal")
}

func TestRound(t *testing.T) {
	r := money.Round(decimal.NewFromFloat(1.005), 2)
	assert.True(t, r.Equal(decimal.NewFromFloat(1.01)), "se obtuvo %s", r)

	r = money.Round(decimal.NewFromFloat(2.344), 2)
	assert.True(t, r.Equal(decimal.NewFromFloat(2.34)), "se obtuvo %s", r)
}
