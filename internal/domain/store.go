// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Store representa uma loja da rede (duas marcas, agrupada por área e tipo de ponto)
type Store struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Area  string `json:"area"`
	Brand string `json:"brand"`
	Spot  string `json:"spot"`
}

// BrandName converte o código da marca (1 letra) para o nome de exibição.
// Códigos desconhecidos passam sem alteração.
func BrandName(brand string) string {
	switch brand {
	case "A":
		return "築崎燒串"
	case "B":
		return "築崎鍋物"
	default:
		return brand
	}
}

// SpotName converte o código do tipo de ponto (1 letra) para o nome de exibição.
// Códigos desconhecidos passam sem alteração.
func SpotName(spot string) string {
	switch spot {
	case "A":
		return "街邊"
	case "B":
		return "賣場"
	case "C":
		return "學區"
	case "D":
		return "社區"
	default:
		return spot
	}
}
