package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zuchi/dashboard-api/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestIntervalClassifierLabelFor(t *testing.T) {
	begin := date(2025, 3, 1)
	end := date(2025, 3, 31)

	tests := []struct {
		name     string
		interval string
		input    time.Time
		expected string
	}{
		{
			name:     "Dia usa o formato MM/dd",
			interval: domain.IntervalDay,
			input:    date(2025, 3, 5),
			expected: "03/05",
		},
		{
			name:     "Primeira semana começa na data inicial",
			interval: domain.IntervalWeek,
			input:    date(2025, 3, 1),
			expected: "Week 1",
		},
		{
			name:     "Sétimo dia ainda pertence à primeira semana",
			interval: domain.IntervalWeek,
			input:    date(2025, 3, 7),
			expected: "Week 1",
		},
		{
			name:     "Oitavo dia abre a segunda semana",
			interval: domain.IntervalWeek,
			input:    date(2025, 3, 8),
			expected: "Week 2",
		},
		{
			name:     "Mês usa o formato yyyy/MM",
			interval: domain.IntervalMonth,
			input:    date(2025, 3, 20),
			expected: "2025/03",
		},
		{
			name:     "Intervalo desconhecido produz rótulo vazio",
			interval: "fortnight",
			input:    date(2025, 3, 20),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newIntervalClassifier(begin, end, tt.interval)
			assert.Equal(t, tt.expected, c.LabelFor(tt.input))
		})
	}
}

func TestIntervalClassifierLabels(t *testing.T) {
	tests := []struct {
		name     string
		begin    time.Time
		end      time.Time
		interval string
		expected []string
	}{
		{
			name:     "Dia gera um rótulo por dia do período",
			begin:    date(2025, 3, 1),
			end:      date(2025, 3, 3),
			interval: domain.IntervalDay,
			expected: []string{"03/01", "03/02", "03/03"},
		},
		{
			name:     "Semanas são contíguas a partir da data inicial",
			begin:    date(2025, 3, 1),
			end:      date(2025, 3, 20),
			interval: domain.IntervalWeek,
			expected: []string{"Week 1", "Week 2", "Week 3"},
		},
		{
			name:     "Meses cobrem a virada de ano",
			begin:    date(2024, 12, 10),
			end:      date(2025, 1, 20),
			interval: domain.IntervalMonth,
			expected: []string{"2024/12", "2025/01"},
		},
		{
			name:     "Intervalo desconhecido gera um único bucket degenerado",
			begin:    date(2025, 3, 1),
			end:      date(2025, 3, 10),
			interval: "",
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newIntervalClassifier(tt.begin, tt.end, tt.interval)
			assert.Equal(t, tt.expected, c.Labels())
		})
	}
}

func TestClampEnd(t *testing.T) {
	begin := date(2025, 1, 1)

	tests := []struct {
		name     string
		end      time.Time
		interval string
		expected time.Time
	}{
		{
			name:     "Dia limita o período a 7 dias",
			end:      date(2025, 1, 20),
			interval: domain.IntervalDay,
			expected: date(2025, 1, 7),
		},
		{
			name:     "Semana limita o período a 56 dias",
			end:      date(2025, 6, 1),
			interval: domain.IntervalWeek,
			expected: date(2025, 2, 25),
		},
		{
			name:     "Mês limita o período a 365 dias",
			end:      date(2027, 1, 1),
			interval: domain.IntervalMonth,
			expected: date(2025, 12, 31),
		},
		{
			name:     "Período dentro do limite não é alterado",
			end:      date(2025, 1, 5),
			interval: domain.IntervalDay,
			expected: date(2025, 1, 5),
		},
		{
			name:     "Intervalo desconhecido usa o limite de dia",
			end:      date(2025, 2, 1),
			interval: "fortnight",
			expected: date(2025, 1, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, clampEnd(begin, tt.end, tt.interval))
		})
	}
}
