package domain

// SeoSummary é o resumo de tráfego orgânico com as métricas premium, quando existirem
type SeoSummary struct {
	OrganicSessions      float64  `json:"organicSessions"`
	NewUsers             int64    `json:"newUsers"`
	AvgTimeOnPage        float64  `json:"avgTimeOnPage"`
	OrganicSessionsTrend *float64 `json:"organicSessionsTrend"`
	NewUsersTrend        *float64 `json:"newUsersTrend"`
	AvgTimeOnPageTrend   *float64 `json:"avgTimeOnPageTrend"`
	GoalCompletions      *float64 `json:"goalCompletions"`
	AvgPosition          *float64 `json:"avgPosition"`
	AvgPositionTrend     *float64 `json:"avgPositionTrend"`
	BounceRate           float64  `json:"bounceRate"`
	UR                   *float64 `json:"ur"`
	DR                   *float64 `json:"dr"`
	Backlinks            *float64 `json:"backlinks"`
	ReferringDomains     *float64 `json:"referringDomains"`
	Keywords             *float64 `json:"keywords"`
	TrafficCost          *float64 `json:"trafficCost"`
}

// SeoHistoryPoint junta tráfego orgânico, tráfego pago e métricas premium de um dia
type SeoHistoryPoint struct {
	Date                string  `json:"date"`
	OrganicTraffic      int64   `json:"organicTraffic"`
	PaidTraffic         int64   `json:"paidTraffic"`
	PaidTrafficCost     float64 `json:"paidTrafficCost"`
	Impressions         int64   `json:"impressions"`
	AvgPosition         float64 `json:"avgPosition"`
	ReferringDomains    float64 `json:"referringDomains"`
	DR                  float64 `json:"dr"`
	UR                  float64 `json:"ur"`
	OrganicTrafficValue float64 `json:"organicTrafficValue"`
	OrganicPages        int64   `json:"organicPages"`
	CrawledPages        int64   `json:"crawledPages"`
}

type KeywordIntent struct {
	Type     string `json:"type"`
	Keywords int64  `json:"keywords"`
	Traffic  int64  `json:"traffic"`
}

type LocationTraffic struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Traffic     int64  `json:"traffic"`
	CountryCode string `json:"countryCode"`
}

var countryCodes = map[string]string{
	"Thailand":       "TH",
	"United States":  "US",
	"United Kingdom": "GB",
	"Singapore":      "SG",
	"Japan":          "JP",
	"Malaysia":       "MY",
	"Australia":      "AU",
}

// CountryCode retorna o código ISO do país; XX quando desconhecido
func CountryCode(country string) string {
	if code, ok := countryCodes[country]; ok {
		return code
	}
	return "XX"
}
