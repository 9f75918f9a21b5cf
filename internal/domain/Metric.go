package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricRow é a linha diária de uma campanha. As razões gravadas na tabela não são lidas.
type MetricRow struct {
	CampaignID  string
	Date        time.Time
	Impressions int64
	Clicks      int64
	Spend       decimal.Decimal
	Conversions int64
	Revenue     decimal.Decimal
	IsMockData  bool
}

// MetricFilter delimita uma consulta de métricas. Range vazio significa sem limite de datas.
type MetricFilter struct {
	TenantID    string
	Range       DateRange
	Visibility  DataVisibilityPolicy
	CampaignIDs []string
}

// MetricTotals são as somas de uma janela; sem linhas, todos os campos ficam zerados
type MetricTotals struct {
	Impressions int64
	Clicks      int64
	Spend       decimal.Decimal
	Conversions int64
	Revenue     decimal.Decimal
	Rows        int64
	MockRows    int64
}

// Add soma uma linha diária aos totais
func (t *MetricTotals) Add(row MetricRow) {
	t.Impressions += row.Impressions
	t.Clicks += row.Clicks
	t.Spend = t.Spend.Add(row.Spend)
	t.Conversions += row.Conversions
	t.Revenue = t.Revenue.Add(row.Revenue)
	t.Rows++
	if row.IsMockData {
		t.MockRows++
	}
}

// TrendPoint é o agregado de um dia usado nos gráficos de tendência
type TrendPoint struct {
	Date        string  `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions int64   `json:"conversions"`
}
