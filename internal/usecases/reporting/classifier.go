package reporting

import (
	"github.com/zuchi/dashboard-api/internal/domain"
)

// storeClassifier converte uma loja no título do grupo escolhido pelo painel
// (área, marca, tipo de ponto ou a própria loja)
type storeClassifier struct {
	group string
}

func newStoreClassifier(group string) *storeClassifier {
	return &storeClassifier{group: group}
}

// TitleFor devolve o título do grupo da loja. Loja nula produz título vazio,
// que os tallies tratam como "não classificável" e pulam.
func (c *storeClassifier) TitleFor(store *domain.Store) string {
	if store == nil {
		return ""
	}

	switch c.group {
	case domain.GroupArea:
		return store.Area
	case domain.GroupBrand:
		return domain.BrandName(store.Brand)
	case domain.GroupSpot:
		return domain.SpotName(store.Spot)
	default:
		// "custom" e qualquer outro valor agrupam pela própria loja
		return store.Name
	}
}

// CollectionSeed devolve os títulos distintos de todas as lojas conhecidas,
// na ordem da primeira ocorrência. Os buckets são pré-populados com esses
// títulos para que grupos sem movimento apareçam zerados, não ausentes.
func (c *storeClassifier) CollectionSeed(stores []*domain.Store) []string {
	titles := make([]string, 0, len(stores))
	seen := make(map[string]bool, len(stores))

	for _, store := range stores {
		title := c.TitleFor(store)
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		titles = append(titles, title)
	}

	return titles
}
