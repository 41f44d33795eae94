package domain

// Payload enviado pelos terminais de caixa. Os nomes de campo seguem o JSON do
// integrador do PDV (minúsculos), por isso as tags divergem do padrão do projeto.

type CashierRecord struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Type    string       `json:"type"`
	Data    *CashierData `json:"data"`
}

type CashierData struct {
	Store *CashierStore `json:"store"`
	Order *CashierOrder `json:"order"`
}

type CashierStore struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
	No   string `json:"no"`
}

type CashierOrder struct {
	Time      string             `json:"time"`
	ServeType string             `json:"serveType"`
	UUID      string             `json:"uuid"`
	No        string             `json:"no"`
	Subtotal  float64            `json:"subtotal"`
	Discount  float64            `json:"discount"`
	Tax       float64            `json:"tax"`
	Total     float64            `json:"total"`
	Items     []CashierOrderItem `json:"items"`
}

type CashierOrderItem struct {
	UUID     string                   `json:"uuid"`
	SKU      string                   `json:"sku"`
	Name     string                   `json:"name"`
	Quantity int                      `json:"quantity"`
	Price    float64                  `json:"price"`
	Options  []CashierOrderItemOption `json:"options"`
}

type CashierOrderItemOption struct {
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
