package domain

// Revenue é a meta de faturamento mensal de uma loja.
// Uma linha ativa por loja; o motor de relatórios soma todas sem recorte de data
// e faz o rateio pelo número de dias do período consultado.
type Revenue struct {
	ID      int    `json:"id"`
	StoreID string `json:"storeID"`
	Amount  int    `json:"amount"`
}
