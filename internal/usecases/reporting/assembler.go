package reporting

import (
	"github.com/zuchi/dashboard-api/internal/domain"
	"github.com/zuchi/dashboard-api/pkg/utils"
)

// rawTallies é o resultado bruto das seis agregações, antes da formatação
type rawTallies struct {
	targetRev int
	realRev   int

	customers int
	consumers int

	avgUnitPrice int
	unitPrices   []domain.BucketSeries
	products     []domain.BucketSeries

	sexCounts []int
	ageCounts []int

	carbon carbonTotals
}

// assemble transforma as agregações brutas no documento que o painel consome:
// inteiros com separador de milhar, percentuais com duas casas e sufixo "%",
// e valores degenerados já zerados
func assemble(t rawTallies) *domain.TallyResponse {
	// Meta zerada (loja recém-criada) não pode derrubar o relatório:
	// taxa fica em 0% e a meta é tratada como não atingida
	revRate := 0.0
	if t.targetRev > 0 {
		revRate = float64(t.realRev) / float64(t.targetRev) * 100
	}

	consumerRate := 0.0
	if t.customers > 0 {
		consumerRate = float64(t.consumers) / float64(t.customers) * 100
	}

	return &domain.TallyResponse{
		Success: true,
		Message: "Success",

		TargetRev:  utils.FormatThousands(t.targetRev),
		RealRev:    utils.FormatThousands(t.realRev),
		RevRate:    utils.FormatPercent(revRate),
		RevAchieve: revRate >= 100,

		Customers:    t.customers,
		Consumers:    t.consumers,
		ConsumerRate: utils.FormatPercent(consumerRate),

		AvgUnitPrice: t.avgUnitPrice,
		UnitPrices:   t.unitPrices,
		Products:     t.products,

		SexCounts: t.sexCounts,
		AgeCounts: t.ageCounts,

		TotalSCE:   t.carbon.TotalSCE,
		AvgSCE:     t.carbon.AvgSCE,
		UseRateSCE: utils.FormatPercent(t.carbon.UseRateSCE),
		TotalDCE:   t.carbon.TotalDCE,
		AvgDCE:     t.carbon.AvgDCE,
		UseRateDCE: utils.FormatPercent(t.carbon.UseRateDCE),
	}
}

// failure monta a resposta de falha no envelope histórico do painel:
// success=false com a causa em message e nenhum agregado preenchido
func failure(message string) *domain.TallyResponse {
	return &domain.TallyResponse{
		Success: false,
		Message: message,
	}
}
