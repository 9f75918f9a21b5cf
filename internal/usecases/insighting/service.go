package insighting

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/marketing-dashboard-api/pkg/kpi"
)

const (
	DefaultBudgetAdjustment = 15
	MinBudgetAdjustment     = -30
	MaxBudgetAdjustment     = 40
)

// Insighter monta a página de insights a partir do mesmo overview servido ao dashboard
type Insighter interface {
	GetAiInsights(ctx context.Context, tenantID string, qr domain.QueryRange, policy domain.DataVisibilityPolicy, budgetAdjustment *float64) (*domain.AiInsights, error)
}

type Service struct {
	overviewer dashboard.Overviewer
	now        func() time.Time
}

func NewService(overviewer dashboard.Overviewer) *Service {
	return &Service{
		overviewer: overviewer,
		now:        time.Now,
	}
}

// WithClock substitui o relógio usado no mês base da previsão
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetAiInsights(ctx context.Context, tenantID string, qr domain.QueryRange, policy domain.DataVisibilityPolicy, budgetAdjustment *float64) (*domain.AiInsights, error) {
	overview, err := s.overviewer.GetOverview(ctx, tenantID, qr, policy)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro ao buscar overview para os insights")
		return nil, err
	}

	return Build(overview, ClampBudgetAdjustment(budgetAdjustment), s.now().UTC()), nil
}

// Build deriva todos os blocos da página de insights de um overview
func Build(overview *domain.DashboardOverview, budgetAdjustment float64, now time.Time) *domain.AiInsights {
	metrics := DeriveMetrics(overview.Summary, overview.Growth)

	return &domain.AiInsights{
		Metrics:         roundMetrics(metrics),
		Insights:        BuildInsights(metrics),
		Anomalies:       DetectAnomalies(metrics, overview.Growth),
		Recommendations: Recommend(metrics),
		WhatIf:          roundProjection(ProjectBudget(metrics, budgetAdjustment)),
		Forecast:        roundForecast(Forecast(overview.Trends, overview.Summary.AverageRoas, now)),
		Funnel:          BuildFunnel(overview.Summary),
		CampaignRanking: RankCampaigns(overview.RecentCampaigns, overview.Summary.AverageRoas),
		IsDemo:          overview.IsDemo,
	}
}

// ClampBudgetAdjustment aplica o padrão de 15% e limita entre -30% e 40%.
// Valores não finitos caem no padrão.
func ClampBudgetAdjustment(adjustment *float64) float64 {
	if adjustment == nil || math.IsNaN(*adjustment) || math.IsInf(*adjustment, 0) {
		return DefaultBudgetAdjustment
	}
	return min(max(*adjustment, MinBudgetAdjustment), MaxBudgetAdjustment)
}

func roundMetrics(m domain.BusinessMetrics) domain.BusinessMetrics {
	return domain.BusinessMetrics{
		Revenue:        kpi.Round(m.Revenue, 2),
		Cost:           kpi.Round(m.Cost, 2),
		Profit:         kpi.Round(m.Profit, 2),
		ROI:            kpi.Round(m.ROI, 2),
		ROAS:           kpi.Round(m.ROAS, 2),
		CTR:            kpi.Round(m.CTR, 2),
		CPA:            kpi.Round(m.CPA, 2),
		CPC:            kpi.Round(m.CPC, 2),
		ConversionRate: kpi.Round(m.ConversionRate, 2),
		CAC:            kpi.Round(m.CAC, 2),
		LTV:            kpi.Round(m.LTV, 2),
		CPCGrowth:      kpi.RoundPtr(m.CPCGrowth, 1),
	}
}

func roundProjection(p domain.WhatIfProjection) domain.WhatIfProjection {
	p.ProjectedRevenue = kpi.Round(p.ProjectedRevenue, 2)
	p.ProjectedCost = kpi.Round(p.ProjectedCost, 2)
	p.ProjectedProfit = kpi.Round(p.ProjectedProfit, 2)
	p.ProjectedROI = kpi.Round(p.ProjectedROI, 2)
	return p
}

func roundForecast(points []domain.ForecastPoint) []domain.ForecastPoint {
	for i := range points {
		points[i].Revenue = kpi.Round(points[i].Revenue, 2)
	}
	return points
}
