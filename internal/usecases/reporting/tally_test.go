package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zuchi/dashboard-api/internal/domain"
)

func transactionAt(t time.Time, storeID string, amount int, consumers int) *domain.Transaction {
	return &domain.Transaction{
		StoreID:        storeID,
		Time:           &t,
		Amount:         amount,
		NumOfConsumers: consumers,
	}
}

func TestUnitPriceTally(t *testing.T) {
	stores := []*domain.Store{
		{ID: "S001", Name: "Loja 1", Area: "北區"},
		{ID: "S002", Name: "Loja 2", Area: "南區"},
	}

	begin := date(2025, 3, 1)
	end := date(2025, 3, 2)
	intervals := newIntervalClassifier(begin, end, domain.IntervalDay)
	classifier := newStoreClassifier(domain.GroupArea)

	t.Run("Períodos sem movimento aparecem com todas as áreas zeradas", func(t *testing.T) {
		tally := newUnitPriceTally(intervals, classifier, stores)

		series := tally.series()

		assert.Len(t, series, 2)
		assert.Equal(t, "03/01", series[0].Name)
		assert.Equal(t, "03/02", series[1].Name)
		for _, s := range series {
			assert.Equal(t, []domain.BucketValue{
				{Title: "北區", Value: 0},
				{Title: "南區", Value: 0},
			}, s.Values)
		}
		assert.Equal(t, 0, tally.averageUnitPrice())
	})

	t.Run("Preço unitário é faturamento dividido por consumidores", func(t *testing.T) {
		tally := newUnitPriceTally(intervals, classifier, stores)

		tally.add(transactionAt(date(2025, 3, 1), "S001", 1000, 5), stores[0])
		tally.add(transactionAt(date(2025, 3, 1), "S001", 500, 1), stores[0])

		series := tally.series()
		assert.Equal(t, []domain.BucketValue{
			{Title: "北區", Value: 250}, // (1000+500)/(5+1)
			{Title: "南區", Value: 0},
		}, series[0].Values)
		assert.Equal(t, 250, tally.averageUnitPrice())
	})

	t.Run("Transação sem consumidores zera a célula em vez de dividir por zero", func(t *testing.T) {
		tally := newUnitPriceTally(intervals, classifier, stores)

		tally.add(transactionAt(date(2025, 3, 2), "S002", 900, 0), stores[1])

		series := tally.series()
		assert.Equal(t, []domain.BucketValue{
			{Title: "北區", Value: 0},
			{Title: "南區", Value: 0},
		}, series[1].Values)
	})

	t.Run("Transação sem horário ou de loja desconhecida é ignorada", func(t *testing.T) {
		tally := newUnitPriceTally(intervals, classifier, stores)

		noTime := &domain.Transaction{StoreID: "S001", Amount: 100, NumOfConsumers: 1}
		tally.add(noTime, stores[0])
		tally.add(transactionAt(date(2025, 3, 1), "S999", 100, 1), nil)

		assert.Equal(t, 0, tally.averageUnitPrice())
	})
}

func TestProductTally(t *testing.T) {
	stores := []*domain.Store{
		{ID: "S001", Name: "Loja 1", Area: "北區"},
		{ID: "S002", Name: "Loja 2", Area: "南區"},
	}
	classifier := newStoreClassifier(domain.GroupArea)

	t.Run("Produtos ordenados por quantidade decrescente dentro do grupo", func(t *testing.T) {
		tally := newProductTally(classifier, stores)

		now := date(2025, 3, 1)
		tally.add(&domain.Transaction{
			StoreID: "S001",
			Time:    &now,
			Items: []*domain.TransactionItem{
				{Product: "牛肉串", Qty: 2},
				{Product: "雞肉串", Qty: 5},
			},
		}, stores[0])
		tally.add(&domain.Transaction{
			StoreID: "S001",
			Time:    &now,
			Items: []*domain.TransactionItem{
				{Product: "牛肉串", Qty: 4},
			},
		}, stores[0])

		series := tally.series()
		assert.Len(t, series, 2)
		assert.Equal(t, "北區", series[0].Name)
		assert.Equal(t, []domain.BucketValue{
			{Title: "牛肉串", Value: 6},
			{Title: "雞肉串", Value: 5},
		}, series[0].Values)

		// Grupo sem movimento continua presente, vazio
		assert.Equal(t, "南區", series[1].Name)
		assert.Empty(t, series[1].Values)
	})

	t.Run("Itens sem nome de produto são descartados", func(t *testing.T) {
		tally := newProductTally(classifier, stores)

		now := date(2025, 3, 1)
		tally.add(&domain.Transaction{
			StoreID: "S001",
			Time:    &now,
			Items: []*domain.TransactionItem{
				{Product: "", Qty: 9},
			},
		}, stores[0])

		series := tally.series()
		assert.Empty(t, series[0].Values)
	})
}

func TestTallyMembers(t *testing.T) {
	today := date(2025, 6, 1)

	members := []*domain.Member{
		{Sex: "M", BirthDay: date(2010, 1, 1)}, // 15 anos
		{Sex: "F", BirthDay: date(2000, 1, 1)}, // 25
		{Sex: "M", BirthDay: date(1990, 1, 1)}, // 35
		{Sex: "F", BirthDay: date(1980, 1, 1)}, // 45
		{Sex: "M", BirthDay: date(1970, 1, 1)}, // 55
		{Sex: "F", BirthDay: date(1950, 1, 1)}, // 75
		{Sex: "X", BirthDay: date(2000, 1, 1)}, // sexo desconhecido conta só na idade
	}

	sexCounts, ageCounts := tallyMembers(members, today)

	assert.Equal(t, []int{3, 3}, sexCounts)
	assert.Equal(t, []int{1, 2, 1, 1, 1, 1}, ageCounts)
}

func TestTallyMembersVazio(t *testing.T) {
	sexCounts, ageCounts := tallyMembers(nil, date(2025, 6, 1))

	assert.Equal(t, []int{0, 0}, sexCounts)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, ageCounts)
}
