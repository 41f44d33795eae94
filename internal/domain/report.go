package domain

import "time"

// Intervalos de agrupamento temporal aceitos pelo relatório do painel
const (
	IntervalDay   = "day"
	IntervalWeek  = "week"
	IntervalMonth = "month"
)

// Agrupamentos de lojas aceitos pelo relatório do painel
const (
	GroupArea   = "area"
	GroupBrand  = "brand"
	GroupSpot   = "spot"
	GroupCustom = "custom"
)

// TallyFilters são os parâmetros do relatório consolidado.
// Begin e End são datas inclusivas (dia inteiro).
type TallyFilters struct {
	Begin    time.Time
	End      time.Time
	Interval string
	Group    string
}

// BucketValue é uma célula (título do grupo, valor) dentro de uma série
type BucketValue struct {
	Title string `json:"title"`
	Value int    `json:"value"`
}

// BucketSeries é uma série nomeada de células, na forma que os gráficos consomem
type BucketSeries struct {
	Name   string        `json:"name"`
	Values []BucketValue `json:"values"`
}

// TallyResponse é o documento único devolvido ao painel. Falhas são sinalizadas
// no corpo (success=false) mantendo HTTP 200, por compatibilidade com os
// clientes de gráficos existentes.
type TallyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	TargetRev  string `json:"targetRev"`
	RealRev    string `json:"realRev"`
	RevRate    string `json:"revRate"`
	RevAchieve bool   `json:"revAchieve"`

	Customers    int    `json:"customers"`
	Consumers    int    `json:"consumers"`
	ConsumerRate string `json:"consumerRate"`

	AvgUnitPrice int            `json:"avgUnitPrice"`
	UnitPrices   []BucketSeries `json:"unitPrices"`
	Products     []BucketSeries `json:"products"`

	SexCounts []int `json:"sexCounts"`
	AgeCounts []int `json:"ageCounts"`

	TotalSCE   int    `json:"totalSCE"`
	AvgSCE     int    `json:"avgSCE"`
	UseRateSCE string `json:"useRateSCE"`
	TotalDCE   int    `json:"totalDCE"`
	AvgDCE     int    `json:"avgDCE"`
	UseRateDCE string `json:"useRateDCE"`
}
