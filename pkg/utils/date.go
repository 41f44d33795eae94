package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Today retorna a data de hoje truncada para meia-noite local
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// ParseHTMLDate converte uma data "YYYY-MM-DD" vinda dos inputs do painel.
// Valores malformados retornam a data de hoje, nunca erro — o painel sempre
// responde com algum período válido.
func ParseHTMLDate(value string) time.Time {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return Today()
	}

	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return Today()
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Today()
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return Today()
	}

	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)

	// time.Date normaliza valores fora de faixa (ex.: mês 13); uma data que não
	// bate com os componentes originais é tratada como malformada
	if date.Year() != y || int(date.Month()) != m || date.Day() != d {
		return Today()
	}

	return date
}

// FormatHTMLDate formata a data no padrão "YYYY-MM-DD" dos inputs do painel
func FormatHTMLDate(date time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", date.Year(), int(date.Month()), date.Day())
}
