package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "ACTIVE"
	CampaignStatusPaused    CampaignStatus = "PAUSED"
	CampaignStatusCompleted CampaignStatus = "COMPLETED"
	CampaignStatusDraft     CampaignStatus = "DRAFT"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusDraft:
		return true
	}
	return false
}

type Platform string

const (
	PlatformGoogleAds       Platform = "GOOGLE_ADS"
	PlatformFacebook        Platform = "FACEBOOK"
	PlatformTikTok          Platform = "TIKTOK"
	PlatformLineAds         Platform = "LINE_ADS"
	PlatformShopee          Platform = "SHOPEE"
	PlatformLazada          Platform = "LAZADA"
	PlatformGoogleAnalytics Platform = "GOOGLE_ANALYTICS"
)

func (p Platform) IsValid() bool {
	switch p {
	case PlatformGoogleAds, PlatformFacebook, PlatformTikTok, PlatformLineAds,
		PlatformShopee, PlatformLazada, PlatformGoogleAnalytics:
		return true
	}
	return false
}

type Campaign struct {
	ID         string          `json:"id"`
	TenantID   string          `json:"tenant_id"`
	Name       string          `json:"name"`
	Platform   Platform        `json:"platform"`
	Status     CampaignStatus  `json:"status"`
	Budget     decimal.Decimal `json:"budget"`
	StartDate  *time.Time      `json:"start_date"`
	EndDate    *time.Time      `json:"end_date"`
	ExternalID *string         `json:"external_id"`
	IsMockData bool            `json:"is_mock_data"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NormalizedCampaign é a campanha com as métricas somadas da janela consultada
type NormalizedCampaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Platform    Platform       `json:"platform"`
	Status      CampaignStatus `json:"status"`
	Budget      float64        `json:"budget"`
	StartDate   *time.Time     `json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	ExternalID  *string        `json:"externalId"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Spend       float64        `json:"spend"`
	Revenue     float64        `json:"revenue"`
	Clicks      int64          `json:"clicks"`
	Impressions int64          `json:"impressions"`
	Conversions int64          `json:"conversions"`
	ROAS        float64        `json:"roas"`
	CTR         float64        `json:"ctr"`
}

// CampaignFilters são os filtros da listagem de campanhas
type CampaignFilters struct {
	TenantID   string
	Status     CampaignStatus
	Platform   Platform
	Search     string
	Page       int
	Limit      int
	Window     DateRange
	Visibility DataVisibilityPolicy
}

const (
	DefaultCampaignPage  = 1
	DefaultCampaignLimit = 10
	MaxCampaignLimit     = 100
)

// Normalize aplica os valores padrão de paginação
func (f CampaignFilters) Normalize() CampaignFilters {
	if f.Page < 1 {
		f.Page = DefaultCampaignPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultCampaignLimit
	}
	if f.Limit > MaxCampaignLimit {
		f.Limit = MaxCampaignLimit
	}
	return f
}

func (f CampaignFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}

type CampaignPageMeta struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total"`
	TotalPages int64  `json:"totalPages"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
}

type CampaignPage struct {
	Data []NormalizedCampaign `json:"data"`
	Meta CampaignPageMeta     `json:"meta"`
}

// CampaignDailyMetric são as métricas de um dia com as razões recalculadas a partir dos valores brutos
type CampaignDailyMetric struct {
	Date           string  `json:"date"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Spend          float64 `json:"spend"`
	Conversions    int64   `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	ROAS           float64 `json:"roas"`
	ConversionRate float64 `json:"conversionRate"`
}

type CampaignRef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Platform Platform `json:"platform"`
}

type CampaignMetrics struct {
	Campaign CampaignRef           `json:"campaign"`
	Metrics  []CampaignDailyMetric `json:"metrics"`
}
