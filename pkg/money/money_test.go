package money

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	nilString := (*string)(nil)
	value := "1.500,00"

	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{name: "formato brasileiro com milhar", input: "3.890,75", expected: 3890.75},
		{name: "zero brasileiro", input: "0,00", expected: 0},
		{name: "ponto decimal sem vírgula", input: "100.00", expected: 100},
		{name: "nil", input: nil, expected: 0},
		{name: "string vazia", input: "", expected: 0},
		{name: "símbolo de moeda", input: "R$ 1.234,56", expected: 1234.56},
		{name: "texto de fonte de pagamento", input: "Saldo disponível (R$3.890,75 BRL)", expected: 3890.75},
		{name: "nan textual", input: "NaN", expected: 0},
		{name: "undefined textual", input: "undefined", expected: 0},
		{name: "null textual", input: " null ", expected: 0},
		{name: "lixo", input: "abc", expected: 0},
		{name: "float", input: 42.5, expected: 42.5},
		{name: "float NaN", input: math.NaN(), expected: 0},
		{name: "inteiro", input: 7, expected: 7},
		{name: "decimal", input: decimal.RequireFromString("12.34"), expected: 12.34},
		{name: "json.Number", input: json.Number("99.9"), expected: 99.9},
		{name: "ponteiro nulo", input: nilString, expected: 0},
		{name: "ponteiro de string", input: &value, expected: 1500},
		{name: "milhões", input: "1.234.567,89", expected: 1234567.89},
		{name: "negativo", input: "-50,00", expected: -50},
		{name: "tipo desconhecido", input: struct{}{}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Parse(tt.input), 0.0001)
		})
	}
}

func TestParseNonNegative(t *testing.T) {
	assert.Equal(t, 0.0, ParseNonNegative("-50,00"))
	assert.InDelta(t, 50.0, ParseNonNegative("50,00"), 0.0001)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{input: 3890.75, expected: "3.890,75"},
		{input: 0, expected: "0,00"},
		{input: 100, expected: "100,00"},
		{input: 1234567.891, expected: "1.234.567,89"},
		{input: 999.999, expected: "1.000,00"},
		{input: -1500.5, expected: "-1.500,50"},
		{input: math.Inf(1), expected: "0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

func TestFormatThenParseRoundTrip(t *testing.T) {
	amounts := []float64{0, 0.01, 1, 12.3, 499.99, 500, 3890.75, 10000, 1234567.89}

	for _, amount := range amounts {
		assert.InDelta(t, amount, Parse(Format(amount)), 0.005, "valor %v", amount)
		assert.InDelta(t, amount, Parse(FormatBRL(amount)), 0.005, "valor %v", amount)
	}
}

func TestToDecimal(t *testing.T) {
	assert.True(t, decimal.RequireFromString("3890.75").Equal(ToDecimal("3.890,75")))
	assert.True(t, decimal.Zero.Equal(ToDecimal("-10,00")))
	assert.True(t, decimal.Zero.Equal(ToDecimal(nil)))
}
