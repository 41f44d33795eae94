package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{name: "Zero", input: 0, expected: "0"},
		{name: "Menor que mil não recebe separador", input: 999, expected: "999"},
		{name: "Exatamente mil", input: 1000, expected: "1,000"},
		{name: "Milhões", input: 1234567, expected: "1,234,567"},
		{name: "Grupo inicial incompleto", input: 12345, expected: "12,345"},
		{name: "Negativo mantém o sinal antes dos grupos", input: -9876543, expected: "-9,876,543"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatThousands(tt.input))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "Duas casas decimais", input: 83.3333333, expected: "83.33%"},
		{name: "Zero", input: 0, expected: "0.00%"},
		{name: "Acima de 100 não é truncado", input: 150.5, expected: "150.50%"},
		{name: "NaN vira zero", input: math.NaN(), expected: "0.00%"},
		{name: "Infinito vira zero", input: math.Inf(1), expected: "0.00%"},
		{name: "Infinito negativo vira zero", input: math.Inf(-1), expected: "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercent(tt.input))
		})
	}
}

func TestClampInt32(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{name: "Valor normal é truncado", input: 200.9, expected: 200},
		{name: "NaN vira zero", input: math.NaN(), expected: 0},
		{name: "Infinito vira zero", input: math.Inf(1), expected: 0},
		{name: "Acima de int32 vira zero", input: float64(math.MaxInt32) + 1, expected: 0},
		{name: "Abaixo de int32 vira zero", input: float64(math.MinInt32) - 1, expected: 0},
		{name: "Limite superior é aceito", input: float64(math.MaxInt32), expected: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampInt32(tt.input))
		})
	}
}
