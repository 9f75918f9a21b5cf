package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/marketing-dashboard-api/pkg/kpi"
	"golang.org/x/sync/errgroup"
)

// OverviewCache é o cache de leitura do overview; implementado sobre o redis
type OverviewCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type Overviewer interface {
	GetOverview(ctx context.Context, tenantID string, qr domain.QueryRange, policy domain.DataVisibilityPolicy) (*domain.DashboardOverview, error)
}

type Service struct {
	cfg                *config.Config
	metricRepository   repository.MetricRepository
	campaignRepository repository.CampaignRepository
	cache              OverviewCache
	cacheTTL           time.Duration
}

func NewService(
	cfg *config.Config,
	metricRepository repository.MetricRepository,
	campaignRepository repository.CampaignRepository,
) *Service {
	return &Service{
		cfg:                cfg,
		metricRepository:   metricRepository,
		campaignRepository: campaignRepository,
	}
}

// WithCache habilita o cache do overview
func (s *Service) WithCache(cache OverviewCache, ttl time.Duration) *Service {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

func cacheKey(tenantID string, qr domain.QueryRange, policy domain.DataVisibilityPolicy) string {
	return fmt.Sprintf("overview:%s:%s:%s:%s:%s:%s",
		tenantID,
		qr.Current.From(), qr.Current.To(),
		qr.Previous.From(), qr.Previous.To(),
		policy.CacheKey(),
	)
}

// GetOverview consulta as duas janelas, as tendências e as campanhas recentes em paralelo.
// Os indicadores só são calculados depois que todas as consultas terminam.
func (s *Service) GetOverview(ctx context.Context, tenantID string, qr domain.QueryRange, policy domain.DataVisibilityPolicy) (*domain.DashboardOverview, error) {
	key := cacheKey(tenantID, qr, policy)
	if s.cache != nil {
		var cached domain.DashboardOverview
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Warn("Falha ao ler overview do cache, consultando o banco")
		} else if found {
			return &cached, nil
		}
	}

	var (
		current  *domain.MetricTotals
		previous *domain.MetricTotals
		trends   []domain.TrendPoint
		recent   []domain.RecentCampaign
	)

	currentFilter := domain.MetricFilter{TenantID: tenantID, Range: qr.Current, Visibility: policy}
	previousFilter := domain.MetricFilter{TenantID: tenantID, Range: qr.Previous, Visibility: policy}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.metricRepository.GetTotals(gctx, currentFilter)
		if err != nil {
			return domain.Upstream("totais do período atual", err)
		}
		current = totals
		return nil
	})

	g.Go(func() error {
		totals, err := s.metricRepository.GetTotals(gctx, previousFilter)
		if err != nil {
			return domain.Upstream("totais do período anterior", err)
		}
		previous = totals
		return nil
	})

	g.Go(func() error {
		points, err := s.metricRepository.GetDailyTrends(gctx, currentFilter)
		if err != nil {
			return domain.Upstream("tendências diárias", err)
		}
		trends = points
		return nil
	})

	g.Go(func() error {
		campaigns, err := s.recentCampaigns(gctx, currentFilter)
		if err != nil {
			return err
		}
		recent = campaigns
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"period":    qr.Period,
			"error":     err.Error(),
		}).Error("Erro ao montar overview do dashboard")
		return nil, err
	}

	if current == nil {
		current = &domain.MetricTotals{}
	}
	if previous == nil {
		previous = &domain.MetricTotals{}
	}
	if trends == nil {
		trends = []domain.TrendPoint{}
	}

	overview := &domain.DashboardOverview{
		Summary:         BuildSummary(current),
		Growth:          BuildGrowth(current, previous),
		Trends:          trends,
		RecentCampaigns: recent,
		IsDemo:          current.MockRows > 0,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, overview, s.cacheTTL); err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Warn("Falha ao gravar overview no cache")
		}
	}

	return overview, nil
}

func (s *Service) recentCampaigns(ctx context.Context, filter domain.MetricFilter) ([]domain.RecentCampaign, error) {
	limit := s.cfg.Dashboard.RecentCampaignsLimit
	if limit <= 0 {
		limit = 5
	}

	campaigns, err := s.campaignRepository.ListRecent(ctx, filter.TenantID, limit, filter.Visibility)
	if err != nil {
		return nil, domain.Upstream("campanhas recentes", err)
	}

	recent := make([]domain.RecentCampaign, 0, len(campaigns))
	if len(campaigns) == 0 {
		return recent, nil
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	filter.CampaignIDs = ids
	rows, err := s.metricRepository.ListDailyRows(ctx, filter)
	if err != nil {
		return nil, domain.Upstream("métricas das campanhas recentes", err)
	}

	grouped := campaign.GroupByCampaign(rows)
	for _, c := range campaigns {
		campaignRows := grouped[c.ID]
		normalized := campaign.NormalizeCampaign(c, campaignRows)
		totals := campaign.SumMetrics(campaignRows)

		recent = append(recent, domain.RecentCampaign{
			ID:                c.ID,
			Name:              c.Name,
			Status:            c.Status,
			Platform:          c.Platform,
			Spending:          normalized.Spend,
			Impressions:       normalized.Impressions,
			Clicks:            normalized.Clicks,
			Conversions:       normalized.Conversions,
			BudgetUtilization: campaign.BudgetUtilization(totals.Spend, c.Budget),
		})
	}

	return recent, nil
}

// BuildSummary converte as somas em indicadores; razões com duas casas
func BuildSummary(totals *domain.MetricTotals) domain.DashboardSummary {
	impressions := float64(totals.Impressions)
	clicks := float64(totals.Clicks)
	spend := totals.Spend.InexactFloat64()
	revenue := totals.Revenue.InexactFloat64()

	return domain.DashboardSummary{
		TotalImpressions: totals.Impressions,
		TotalClicks:      totals.Clicks,
		TotalCost:        totals.Spend.Round(2).InexactFloat64(),
		TotalConversions: totals.Conversions,
		AverageCtr:       kpi.Round(kpi.CTR(clicks, impressions), 2),
		AverageRoas:      kpi.Round(kpi.ROAS(revenue, spend), 2),
		AverageCpm:       kpi.Round(kpi.CPM(spend, impressions), 2),
		AverageRoi:       kpi.Round(kpi.ROI(revenue, spend), 2),
	}
}

// BuildGrowth compara as janelas sobre os valores não arredondados; variação com uma casa
func BuildGrowth(current, previous *domain.MetricTotals) domain.DashboardGrowth {
	cur := ratios(current)
	prev := ratios(previous)

	growth := func(c, p float64) *float64 {
		return kpi.RoundPtr(kpi.Growth(c, p), 1)
	}

	return domain.DashboardGrowth{
		ImpressionsGrowth: growth(float64(current.Impressions), float64(previous.Impressions)),
		ClicksGrowth:      growth(float64(current.Clicks), float64(previous.Clicks)),
		CostGrowth:        growth(cur.spend, prev.spend),
		ConversionsGrowth: growth(float64(current.Conversions), float64(previous.Conversions)),
		CtrGrowth:         growth(cur.ctr, prev.ctr),
		CpmGrowth:         growth(cur.cpm, prev.cpm),
		RoasGrowth:        growth(cur.roas, prev.roas),
		RoiGrowth:         growth(cur.roi, prev.roi),
	}
}

type windowRatios struct {
	spend float64
	ctr   float64
	cpm   float64
	roas  float64
	roi   float64
}

func ratios(totals *domain.MetricTotals) windowRatios {
	impressions := float64(totals.Impressions)
	spend := totals.Spend.InexactFloat64()
	revenue := totals.Revenue.InexactFloat64()

	return windowRatios{
		spend: spend,
		ctr:   kpi.CTR(float64(totals.Clicks), impressions),
		cpm:   kpi.CPM(spend, impressions),
		roas:  kpi.ROAS(revenue, spend),
		roi:   kpi.ROI(revenue, spend),
	}
}
