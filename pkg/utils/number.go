package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatThousands formata um inteiro com separadores de milhar ("1,234,567")
func FormatThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	return sign + b.String()
}

// FormatPercent formata uma razão já multiplicada por 100 como "12.34%"
func FormatPercent(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		rate = 0
	}
	return fmt.Sprintf("%.2f%%", rate)
}

// ClampInt32 converte um valor calculado para inteiro, zerando NaN, infinitos
// e valores fora da faixa de 32 bits antes de chegar aos gráficos
func ClampInt32(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0
	}
	return int(v)
}
