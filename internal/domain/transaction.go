package domain

import "time"

// Transaction representa uma transação enviada pelo caixa de uma loja.
// O horário pode ser nulo quando o payload original não trouxe uma data válida.
type Transaction struct {
	ID             int                `json:"id"`
	StoreID        string             `json:"storeID"`
	Time           *time.Time         `json:"time"`
	NumOfCustomers int                `json:"numOfCustomers"`
	NumOfConsumers int                `json:"numOfConsumers"`
	Amount         int                `json:"amount"`
	Items          []*TransactionItem `json:"items,omitempty"`
}

// TransactionItem é um item de venda pertencente a uma transação.
// StoreID e Time são desnormalizados da transação pai no momento da criação.
type TransactionItem struct {
	ID           int        `json:"id"`
	MasterID     int        `json:"masterID"`
	StoreID      string     `json:"storeID"`
	Time         *time.Time `json:"time"`
	ProductClass string     `json:"productClass"`
	Product      string     `json:"product"`
	Qty          int        `json:"qty"`
}
