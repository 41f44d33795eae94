package ingesting

import (
	"strings"

	"github.com/zuchi/dashboard-api/internal/domain"
)

// partyCounter deriva a quantidade de clientes (sentados) e consumidores
// (pagantes) a partir dos itens do pedido. As regras são específicas de cada
// marca e casam palavras-chave nos nomes de produto do PDV — regras de
// negócio, registradas por código de marca para facilitar marcas novas.
type partyCounter func(items []*domain.TransactionItem) (customers int, consumers int)

var partyCounters = map[string]partyCounter{
	"A": countSkewerParty,
	"B": countHotPotParty,
}

func countParty(brand string, items []*domain.TransactionItem) (customers int, consumers int) {
	counter, ok := partyCounters[brand]
	if !ok {
		return 0, 0
	}
	return counter(items)
}

// Marca A (燒串): cada refeição de adulto conta cliente e consumidor;
// o menu infantil fixo conta apenas como cliente
func countSkewerParty(items []*domain.TransactionItem) (customers int, consumers int) {
	for _, item := range items {
		switch {
		case strings.Contains(item.Product, "平日午餐"), strings.Contains(item.Product, "晚餐/假日"):
			customers++
			consumers++
		case item.Product == "兒童299":
			customers++
		}
	}
	return customers, consumers
}

// Marca B (鍋物): cada caldo individual conta cliente e consumidor; crianças
// contam só como cliente; combos de duas e três pessoas contam o grupo inteiro
func countHotPotParty(items []*domain.TransactionItem) (customers int, consumers int) {
	for _, item := range items {
		switch {
		case strings.Contains(item.Product, "湯底"):
			customers++
			consumers++
		case strings.Contains(item.Product, "兒童"), strings.Contains(item.Product, "幼童"):
			customers++
		case strings.Contains(item.Product, "【雙人】"):
			customers += 2
			consumers += 2
		case strings.Contains(item.Product, "【三人】"):
			customers += 3
			consumers += 3
		}
	}
	return customers, consumers
}
