// Package reporting implementa o relatório consolidado do painel: seis
// agregações independentes sobre o mesmo conjunto de transações do período
package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zuchi/dashboard-api/infrastructure/repository"
	"github.com/zuchi/dashboard-api/internal/domain"
	"github.com/zuchi/dashboard-api/pkg/utils"
)

type ReportService interface {
	// Tally calcula o relatório consolidado do período [Begin, End] inclusivo.
	// Falhas são devolvidas no próprio documento (success=false), nunca como erro.
	Tally(filters domain.TallyFilters) *domain.TallyResponse
}

type Service struct {
	storeRepo       repository.StoreRepository
	transactionRepo repository.TransactionRepository
	memberRepo      repository.MemberRepository
	revenueRepo     repository.RevenueRepository
}

func NewService(
	storeRepo repository.StoreRepository,
	transactionRepo repository.TransactionRepository,
	memberRepo repository.MemberRepository,
	revenueRepo repository.RevenueRepository,
) ReportService {
	return &Service{
		storeRepo:       storeRepo,
		transactionRepo: transactionRepo,
		memberRepo:      memberRepo,
		revenueRepo:     revenueRepo,
	}
}

func (s *Service) Tally(filters domain.TallyFilters) *domain.TallyResponse {
	if filters.Begin.After(filters.End) {
		return failure("a data inicial não pode ser posterior à data final")
	}

	begin := filters.Begin
	end := clampEnd(begin, filters.End, filters.Interval)
	endExclusive := end.AddDate(0, 0, 1)

	stores, err := s.storeRepo.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar lojas para o relatório")
		return failure(err.Error())
	}

	revenues, err := s.revenueRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar metas para o relatório")
		return failure(err.Error())
	}

	transactions, err := s.transactionRepo.ListByRange(begin, endExclusive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar transações para o relatório")
		return failure(err.Error())
	}

	// O histograma de membros sempre varre a tabela inteira, sem respeitar o
	// período consultado — assimetria herdada do painel original
	members, err := s.memberRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao carregar membros para o relatório")
		return failure(err.Error())
	}

	storesByID := make(map[string]*domain.Store, len(stores))
	for _, store := range stores {
		storesByID[store.ID] = store
	}

	intervals := newIntervalClassifier(begin, end, filters.Interval)
	classifier := newStoreClassifier(filters.Group)

	unitPrices := newUnitPriceTally(intervals, classifier, stores)
	products := newProductTally(classifier, stores)
	carbon := &carbonTally{}

	raw := rawTallies{}

	for _, transaction := range transactions {
		raw.realRev += transaction.Amount
		raw.customers += transaction.NumOfCustomers
		raw.consumers += transaction.NumOfConsumers

		store := storesByID[transaction.StoreID]
		unitPrices.add(transaction, store)
		products.add(transaction, store)
		carbon.add(transaction.NumOfCustomers)
	}

	raw.targetRev = targetRevenue(revenues, begin, end)
	raw.avgUnitPrice = unitPrices.averageUnitPrice()
	raw.unitPrices = unitPrices.series()
	raw.products = products.series()
	raw.sexCounts, raw.ageCounts = tallyMembers(members, utils.Today())
	raw.carbon = carbon.totals()

	return assemble(raw)
}

// targetRevenue rateia a soma das metas mensais pelo tamanho do período:
// soma de todas as metas × dias do período ÷ dias de todos os meses tocados
// pelo período (um período de 3 dias cruzando a virada do mês divide pela
// soma dos dias dos dois meses)
func targetRevenue(revenues []*domain.Revenue, begin time.Time, end time.Time) int {
	total := 0
	for _, revenue := range revenues {
		total += revenue.Amount
	}

	daysInRange := int(end.Sub(begin).Hours()/24) + 1
	monthDays := daysInSpannedMonths(begin, end)
	if monthDays == 0 {
		return 0
	}

	return int(float64(total) * float64(daysInRange) / float64(monthDays))
}

// daysInSpannedMonths soma os dias de cada ano-mês distinto tocado pelo período
func daysInSpannedMonths(begin time.Time, end time.Time) int {
	total := 0

	cursor := time.Date(begin.Year(), begin.Month(), 1, 0, 0, 0, 0, begin.Location())
	for !cursor.After(end) {
		next := cursor.AddDate(0, 1, 0)
		total += int(next.Sub(cursor).Hours() / 24)
		cursor = next
	}

	return total
}
