package reporting

import (
	"sort"
	"time"

	"github.com/zuchi/dashboard-api/internal/domain"
	"github.com/zuchi/dashboard-api/pkg/utils"
)

// unitPriceCell acumula faturamento e consumidores de uma célula (rótulo, título)
type unitPriceCell struct {
	amount    int
	consumers int
	value     int
}

type unitPriceTally struct {
	intervals  *intervalClassifier
	classifier *storeClassifier
	seed       []string
	buckets    map[string]map[string]*unitPriceCell
	labels     []string

	totalAmount    int
	totalConsumers int
}

func newUnitPriceTally(
	intervals *intervalClassifier,
	classifier *storeClassifier,
	stores []*domain.Store,
) *unitPriceTally {
	t := &unitPriceTally{
		intervals:  intervals,
		classifier: classifier,
		seed:       classifier.CollectionSeed(stores),
		buckets:    make(map[string]map[string]*unitPriceCell),
	}

	// Pré-semear todos os rótulos do período para que intervalos sem
	// movimento apareçam zerados nos gráficos
	for _, label := range intervals.Labels() {
		t.ensureLabel(label)
	}

	return t
}

// ensureLabel semeia o bucket do rótulo com todos os títulos conhecidos na
// primeira vez em que o rótulo aparece
func (t *unitPriceTally) ensureLabel(label string) map[string]*unitPriceCell {
	cells, ok := t.buckets[label]
	if !ok {
		cells = make(map[string]*unitPriceCell, len(t.seed))
		for _, title := range t.seed {
			cells[title] = &unitPriceCell{}
		}
		t.buckets[label] = cells
		t.labels = append(t.labels, label)
	}
	return cells
}

func (t *unitPriceTally) add(transaction *domain.Transaction, store *domain.Store) {
	if transaction.Time == nil {
		return
	}

	title := t.classifier.TitleFor(store)
	if title == "" {
		return
	}

	label := t.intervals.LabelFor(*transaction.Time)
	cells := t.ensureLabel(label)

	cell, ok := cells[title]
	if !ok {
		cell = &unitPriceCell{}
		cells[title] = cell
	}

	cell.amount += transaction.Amount
	cell.consumers += transaction.NumOfConsumers

	// Preço unitário recalculado a cada atualização; divisão por zero vira 0
	if cell.consumers > 0 {
		cell.value = utils.ClampInt32(float64(cell.amount) / float64(cell.consumers))
	} else {
		cell.value = 0
	}

	t.totalAmount += transaction.Amount
	t.totalConsumers += transaction.NumOfConsumers
}

// series devolve as séries ordenadas pelo rótulo ascendente, com as células
// na ordem dos títulos semeados
func (t *unitPriceTally) series() []domain.BucketSeries {
	labels := append([]string(nil), t.labels...)
	sort.Strings(labels)

	series := make([]domain.BucketSeries, 0, len(labels))
	for _, label := range labels {
		cells := t.buckets[label]
		values := make([]domain.BucketValue, 0, len(t.seed))
		for _, title := range t.seed {
			if cell, ok := cells[title]; ok {
				values = append(values, domain.BucketValue{Title: title, Value: cell.value})
			}
		}
		series = append(series, domain.BucketSeries{Name: label, Values: values})
	}

	return series
}

// averageUnitPrice é a média ponderada sobre todas as células
func (t *unitPriceTally) averageUnitPrice() int {
	if t.totalConsumers <= 0 {
		return 0
	}
	return utils.ClampInt32(float64(t.totalAmount) / float64(t.totalConsumers))
}

// productTally acumula quantidades vendidas por (título do grupo, produto)
type productTally struct {
	classifier *storeClassifier
	groupOrder []string
	groups     map[string]map[string]int
}

func newProductTally(classifier *storeClassifier, stores []*domain.Store) *productTally {
	t := &productTally{
		classifier: classifier,
		groups:     make(map[string]map[string]int),
	}

	for _, title := range classifier.CollectionSeed(stores) {
		t.groups[title] = make(map[string]int)
		t.groupOrder = append(t.groupOrder, title)
	}

	return t
}

func (t *productTally) add(transaction *domain.Transaction, store *domain.Store) {
	title := t.classifier.TitleFor(store)
	if title == "" {
		return
	}

	group, ok := t.groups[title]
	if !ok {
		group = make(map[string]int)
		t.groups[title] = group
		t.groupOrder = append(t.groupOrder, title)
	}

	for _, item := range transaction.Items {
		if item.Product == "" {
			continue
		}
		group[item.Product] += item.Qty
	}
}

// series devolve, por grupo, os produtos ordenados pela quantidade acumulada
// decrescente (empates em ordem indefinida)
func (t *productTally) series() []domain.BucketSeries {
	series := make([]domain.BucketSeries, 0, len(t.groupOrder))

	for _, title := range t.groupOrder {
		group := t.groups[title]

		values := make([]domain.BucketValue, 0, len(group))
		for product, qty := range group {
			values = append(values, domain.BucketValue{Title: product, Value: qty})
		}

		sort.SliceStable(values, func(i, j int) bool {
			return values[i].Value > values[j].Value
		})

		series = append(series, domain.BucketSeries{Name: title, Values: values})
	}

	return series
}

// tallyMembers monta os histogramas demográficos: sexo (M/F, outros códigos
// são descartados) e seis faixas etárias por diferença de anos
func tallyMembers(members []*domain.Member, today time.Time) (sexCounts []int, ageCounts []int) {
	sexCounts = make([]int, 2)
	ageCounts = make([]int, 6)

	for _, member := range members {
		switch member.Sex {
		case "M":
			sexCounts[0]++
		case "F":
			sexCounts[1]++
		}

		age := member.Age(today)
		switch {
		case age < 20:
			ageCounts[0]++
		case age < 30:
			ageCounts[1]++
		case age < 40:
			ageCounts[2]++
		case age < 50:
			ageCounts[3]++
		case age < 60:
			ageCounts[4]++
		default:
			ageCounts[5]++
		}
	}

	return sexCounts, ageCounts
}
