package reporting

import (
	"fmt"
	"time"

	"github.com/zuchi/dashboard-api/internal/domain"
)

// intervalClassifier converte um timestamp no rótulo do bucket temporal do
// relatório, dentro do período [begin, end]
type intervalClassifier struct {
	begin    time.Time
	end      time.Time
	interval string
}

func newIntervalClassifier(begin time.Time, end time.Time, interval string) *intervalClassifier {
	return &intervalClassifier{
		begin:    begin,
		end:      end,
		interval: interval,
	}
}

// LabelFor devolve o rótulo do bucket do timestamp. Intervalos desconhecidos
// produzem rótulo vazio, que vira um único bucket degenerado.
func (c *intervalClassifier) LabelFor(t time.Time) string {
	switch c.interval {
	case domain.IntervalDay:
		return t.Format("01/02")
	case domain.IntervalWeek:
		// Numeração de semanas relativa à data inicial, começando em 1,
		// por diferença inteira de dias (sem alinhamento de calendário)
		days := int(t.Sub(c.begin).Hours() / 24)
		return fmt.Sprintf("Week %d", days/7+1)
	case domain.IntervalMonth:
		return t.Format("2006/01")
	default:
		return ""
	}
}

// Labels percorre o período e devolve todos os rótulos possíveis, em ordem,
// para que buckets sem movimento apareçam zerados nos gráficos
func (c *intervalClassifier) Labels() []string {
	var step func(time.Time) time.Time

	switch c.interval {
	case domain.IntervalDay:
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
	case domain.IntervalWeek:
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }
	case domain.IntervalMonth:
		step = func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	default:
		return []string{""}
	}

	labels := make([]string, 0)
	seen := make(map[string]bool)

	for cursor := c.begin; !cursor.After(c.end); cursor = step(cursor) {
		label := c.LabelFor(cursor)
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}

	return labels
}

// maxRangeDays limita o tamanho do período por intervalo, para que uma
// consulta muito larga não gere custo de agregação ilimitado
func maxRangeDays(interval string) int {
	switch interval {
	case domain.IntervalWeek:
		return 56
	case domain.IntervalMonth:
		return 365
	default:
		return 7
	}
}

// clampEnd aplica o limite do período sobre a data final inclusiva
func clampEnd(begin time.Time, end time.Time, interval string) time.Time {
	max := maxRangeDays(interval)
	days := int(end.Sub(begin).Hours()/24) + 1
	if days > max {
		return begin.AddDate(0, 0, max-1)
	}
	return end
}
