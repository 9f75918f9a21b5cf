package seo

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/kpi"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultHistoryDays     = 30
	MaxHistoryDays         = 365
	DefaultBreakdownLimit  = 10
	MaxBreakdownLimit      = 50
	lookbackDays           = 30
	topLocations           = 10
	organicPagesPerSession = 15 // décimos
	crawledPagesPerSession = 22 // décimos
)

// Regras da tendência determinística usada sem histórico, quando habilitada
var (
	sessionsRule = kpi.FallbackRule{Modulus: 21, Offset: 10}
	newUsersRule = kpi.FallbackRule{Modulus: 19, Offset: 10}
	timeRule     = kpi.FallbackRule{Modulus: 31, Offset: 15}
)

// Capabilities liga ou desliga integrações opcionais do módulo de SEO
type Capabilities struct {
	HasSearchConsole bool
}

type SeoService interface {
	GetSummary(ctx context.Context, tenantID string, qr domain.QueryRange, policy domain.DataVisibilityPolicy) (*domain.SeoSummary, error)
	GetHistory(ctx context.Context, tenantID string, days int, policy domain.DataVisibilityPolicy) ([]domain.SeoHistoryPoint, error)
	GetKeywordIntent(ctx context.Context, tenantID string) ([]domain.KeywordIntent, error)
	GetTrafficByLocation(ctx context.Context, tenantID string, policy domain.DataVisibilityPolicy) ([]domain.LocationTraffic, error)
	GetSearchConsoleOverview(ctx context.Context, tenantID string, qr domain.QueryRange, siteURL string, limit int, policy domain.DataVisibilityPolicy) (*domain.SearchConsoleOverview, error)
}

type Service struct {
	webAnalyticsRepository  repository.WebAnalyticsRepository
	searchConsoleRepository repository.SearchConsoleRepository
	seoIntentRepository     repository.SeoIntentRepository
	metricRepository        repository.MetricRepository
	capabilities            Capabilities
	growthPolicy            kpi.GrowthPolicy
	historyMaxDays          int
	now                     func() time.Time
}

func NewService(
	cfg *config.Config,
	webAnalyticsRepository repository.WebAnalyticsRepository,
	searchConsoleRepository repository.SearchConsoleRepository,
	seoIntentRepository repository.SeoIntentRepository,
	metricRepository repository.MetricRepository,
) *Service {
	historyMaxDays := cfg.Seo.HistoryMaxDays
	if historyMaxDays <= 0 || historyMaxDays > MaxHistoryDays {
		historyMaxDays = MaxHistoryDays
	}

	return &Service{
		webAnalyticsRepository:  webAnalyticsRepository,
		searchConsoleRepository: searchConsoleRepository,
		seoIntentRepository:     seoIntentRepository,
		metricRepository:        metricRepository,
		capabilities:            Capabilities{HasSearchConsole: cfg.Seo.SearchConsoleEnabled},
		growthPolicy:            kpi.ParseGrowthPolicy(cfg.Seo.GrowthFallbackEnabled),
		historyMaxDays:          historyMaxDays,
		now:                     time.Now,
	}
}

// WithClock substitui o relógio usado nas janelas fixas de 30 dias
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetSummary(ctx context.Context, tenantID string, qr domain.QueryRange, policy domain.DataVisibilityPolicy) (*domain.SeoSummary, error) {
	var (
		current, previous     *domain.WebAnalyticsTotals
		premium               *domain.PremiumSeoMetrics
		gscCurrent, gscBefore *domain.SearchConsoleTotals
	)

	currentFilter := domain.WebAnalyticsFilter{TenantID: tenantID, Range: qr.Current, Visibility: policy}
	previousFilter := domain.WebAnalyticsFilter{TenantID: tenantID, Range: qr.Previous, Visibility: policy}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.webAnalyticsRepository.GetTotals(gctx, currentFilter)
		if err != nil {
			return domain.Upstream("web analytics do período atual", err)
		}
		current = totals
		return nil
	})

	g.Go(func() error {
		totals, err := s.webAnalyticsRepository.GetTotals(gctx, previousFilter)
		if err != nil {
			return domain.Upstream("web analytics do período anterior", err)
		}
		previous = totals
		return nil
	})

	g.Go(func() error {
		metrics, err := s.webAnalyticsRepository.GetLatestSeoMetrics(gctx, currentFilter)
		if err != nil {
			return domain.Upstream("métricas premium de SEO", err)
		}
		premium = metrics
		return nil
	})

	if s.capabilities.HasSearchConsole {
		g.Go(func() error {
			totals, err := s.searchConsoleRepository.GetTotals(gctx, domain.SearchConsoleFilter{TenantID: tenantID, Range: qr.Current, Visibility: policy})
			if err != nil {
				return domain.Upstream("search console do período atual", err)
			}
			gscCurrent = totals
			return nil
		})

		g.Go(func() error {
			totals, err := s.searchConsoleRepository.GetTotals(gctx, domain.SearchConsoleFilter{TenantID: tenantID, Range: qr.Previous, Visibility: policy})
			if err != nil {
				return domain.Upstream("search console do período anterior", err)
			}
			gscBefore = totals
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro ao montar resumo de SEO")
		return nil, err
	}

	if current == nil {
		current = &domain.WebAnalyticsTotals{}
	}
	if previous == nil {
		previous = &domain.WebAnalyticsTotals{}
	}

	sessions := float64(current.Sessions)
	newUsers := float64(current.NewUsers)

	summary := &domain.SeoSummary{
		OrganicSessions:      sessions,
		NewUsers:             current.NewUsers,
		AvgTimeOnPage:        kpi.Round(current.AvgSessionDuration, 0),
		OrganicSessionsTrend: kpi.RoundPtr(s.growthPolicy.Trend(sessions, float64(previous.Sessions), sessionsRule), 1),
		NewUsersTrend:        kpi.RoundPtr(s.growthPolicy.Trend(newUsers, float64(previous.NewUsers), newUsersRule), 1),
		AvgTimeOnPageTrend:   kpi.RoundPtr(s.growthPolicy.Trend(current.AvgSessionDuration, previous.AvgSessionDuration, timeRule), 1),
		BounceRate:           kpi.Round(current.AvgBounceRate, 2),
	}

	if gscCurrent != nil && gscCurrent.Rows > 0 {
		position := kpi.Round(gscCurrent.AvgPosition, 1)
		summary.AvgPosition = &position
		if gscBefore != nil {
			summary.AvgPositionTrend = kpi.RoundPtr(kpi.Growth(gscCurrent.AvgPosition, gscBefore.AvgPosition), 1)
		}
	}

	applyPremium(summary, premium)

	return summary, nil
}

// applyPremium sobrescreve os valores calculados com os informados no metadata.
// Um valor presente, mesmo zero, tem precedência.
func applyPremium(summary *domain.SeoSummary, premium *domain.PremiumSeoMetrics) {
	if premium == nil {
		return
	}

	if premium.OrganicSessions != nil {
		summary.OrganicSessions = *premium.OrganicSessions
	}
	if premium.AvgTimeOnPage != nil {
		summary.AvgTimeOnPage = *premium.AvgTimeOnPage
	}
	if premium.OrganicSessionsTrend != nil {
		summary.OrganicSessionsTrend = premium.OrganicSessionsTrend
	}
	if premium.AvgTimeOnPageTrend != nil {
		summary.AvgTimeOnPageTrend = premium.AvgTimeOnPageTrend
	}
	if premium.AvgPosition != nil {
		summary.AvgPosition = premium.AvgPosition
		summary.AvgPositionTrend = premium.AvgPositionTrend
	}

	summary.GoalCompletions = premium.GoalCompletions
	summary.UR = premium.UR
	summary.DR = premium.DR
	summary.Backlinks = premium.Backlinks
	summary.ReferringDomains = premium.ReferringDomains
	summary.Keywords = premium.Keywords
	summary.TrafficCost = premium.TrafficCost
}

// GetHistory devolve uma linha por dia da janela, com zero nos dias sem dados
func (s *Service) GetHistory(ctx context.Context, tenantID string, days int, policy domain.DataVisibilityPolicy) ([]domain.SeoHistoryPoint, error) {
	if days <= 0 {
		days = DefaultHistoryDays
	}
	if days > s.historyMaxDays {
		days = s.historyMaxDays
	}

	window := domain.LastDays(s.now().UTC(), days)

	var (
		organic []*domain.WebAnalyticsDaily
		paid    []domain.TrendPoint
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.webAnalyticsRepository.ListDaily(gctx, domain.WebAnalyticsFilter{TenantID: tenantID, Range: window, Visibility: policy})
		if err != nil {
			return domain.Upstream("histórico orgânico", err)
		}
		organic = rows
		return nil
	})

	g.Go(func() error {
		points, err := s.metricRepository.GetDailyTrends(gctx, domain.MetricFilter{TenantID: tenantID, Range: window, Visibility: policy})
		if err != nil {
			return domain.Upstream("histórico de mídia paga", err)
		}
		paid = points
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"days":      days,
			"error":     err.Error(),
		}).Error("Erro ao montar histórico de SEO")
		return nil, err
	}

	return mergeHistory(window, organic, paid), nil
}

func mergeHistory(window domain.DateRange, organic []*domain.WebAnalyticsDaily, paid []domain.TrendPoint) []domain.SeoHistoryPoint {
	organicByDate := make(map[string]*domain.WebAnalyticsDaily, len(organic))
	for _, row := range organic {
		organicByDate[row.Date.Format(domain.DateLayout)] = row
	}

	paidByDate := make(map[string]domain.TrendPoint, len(paid))
	for _, point := range paid {
		paidByDate[point.Date] = point
	}

	history := make([]domain.SeoHistoryPoint, 0, window.Days())
	for _, day := range window.EachDay() {
		date := day.Format(domain.DateLayout)
		point := domain.SeoHistoryPoint{Date: date}

		if ads, ok := paidByDate[date]; ok {
			point.PaidTraffic = ads.Clicks
			point.PaidTrafficCost = ads.Cost
			point.Impressions = ads.Impressions
		}

		if row, ok := organicByDate[date]; ok {
			point.OrganicTraffic = row.Sessions
			point.OrganicPages = row.Sessions * organicPagesPerSession / 10
			point.CrawledPages = row.Sessions * crawledPagesPerSession / 10

			if row.Metadata != nil && row.Metadata.SeoMetrics != nil {
				m := row.Metadata.SeoMetrics
				point.AvgPosition = valueOrZero(m.AvgPosition)
				point.ReferringDomains = valueOrZero(m.ReferringDomains)
				point.DR = valueOrZero(m.DR)
				point.UR = valueOrZero(m.UR)
				point.OrganicTrafficValue = valueOrZero(m.TrafficCost)
			}
		}

		history = append(history, point)
	}

	return history
}

// GetKeywordIntent nunca falha: erro de consulta é registrado e vira lista vazia
func (s *Service) GetKeywordIntent(ctx context.Context, tenantID string) ([]domain.KeywordIntent, error) {
	window := domain.LastDays(s.now().UTC(), lookbackDays)

	intents, err := s.seoIntentRepository.GetIntentSummary(ctx, tenantID, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro ao buscar intenção de busca, retornando lista vazia")
		return []domain.KeywordIntent{}, nil
	}

	if intents == nil {
		intents = []domain.KeywordIntent{}
	}

	return intents, nil
}

// GetTrafficByLocation nunca falha: erro de consulta é registrado e vira lista vazia
func (s *Service) GetTrafficByLocation(ctx context.Context, tenantID string, policy domain.DataVisibilityPolicy) ([]domain.LocationTraffic, error) {
	window := domain.LastDays(s.now().UTC(), lookbackDays)

	locations, err := s.webAnalyticsRepository.GetTrafficByLocation(ctx, domain.WebAnalyticsFilter{
		TenantID:   tenantID,
		Range:      window,
		Visibility: policy,
	}, topLocations)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro ao buscar tráfego por localização, retornando lista vazia")
		return []domain.LocationTraffic{}, nil
	}

	result := make([]domain.LocationTraffic, 0, len(locations))
	for _, location := range locations {
		location.CountryCode = domain.CountryCode(location.Country)
		result = append(result, location)
	}

	return result, nil
}

func (s *Service) GetSearchConsoleOverview(ctx context.Context, tenantID string, qr domain.QueryRange, siteURL string, limit int, policy domain.DataVisibilityPolicy) (*domain.SearchConsoleOverview, error) {
	if !s.capabilities.HasSearchConsole {
		return nil, domain.ErrFeatureDisabled
	}

	if limit <= 0 {
		limit = DefaultBreakdownLimit
	}
	if limit > MaxBreakdownLimit {
		limit = MaxBreakdownLimit
	}

	currentFilter := domain.SearchConsoleFilter{TenantID: tenantID, SiteURL: siteURL, Range: qr.Current, Visibility: policy}
	previousFilter := domain.SearchConsoleFilter{TenantID: tenantID, SiteURL: siteURL, Range: qr.Previous, Visibility: policy}

	var current, previous *domain.SearchConsoleTotals
	dimensions := []domain.SearchConsoleDimension{
		domain.DimensionQuery,
		domain.DimensionPage,
		domain.DimensionCountry,
		domain.DimensionDevice,
	}
	breakdowns := make([][]domain.BreakdownItem, len(dimensions))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.searchConsoleRepository.GetTotals(gctx, currentFilter)
		if err != nil {
			return domain.Upstream("search console do período atual", err)
		}
		current = totals
		return nil
	})

	g.Go(func() error {
		totals, err := s.searchConsoleRepository.GetTotals(gctx, previousFilter)
		if err != nil {
			return domain.Upstream("search console do período anterior", err)
		}
		previous = totals
		return nil
	})

	for i, dimension := range dimensions {
		g.Go(func() error {
			items, err := s.searchConsoleRepository.GetBreakdown(gctx, currentFilter, dimension, limit)
			if err != nil {
				return domain.Upstream("search console por "+string(dimension), err)
			}
			breakdowns[i] = rankItems(items, limit)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"site_url":  siteURL,
			"error":     err.Error(),
		}).Error("Erro ao montar overview do search console")
		return nil, err
	}

	if current == nil {
		current = &domain.SearchConsoleTotals{}
	}
	if previous == nil {
		previous = &domain.SearchConsoleTotals{}
	}

	currentCtr := kpi.CTR(float64(current.Clicks), float64(current.Impressions))
	previousCtr := kpi.CTR(float64(previous.Clicks), float64(previous.Impressions))

	return &domain.SearchConsoleOverview{
		Summary: domain.SearchConsoleSummary{
			Clicks:            current.Clicks,
			Impressions:       current.Impressions,
			Ctr:               kpi.Round(currentCtr, 2),
			AvgPosition:       kpi.Round(current.AvgPosition, 2),
			ClicksGrowth:      kpi.RoundPtr(kpi.Growth(float64(current.Clicks), float64(previous.Clicks)), 1),
			ImpressionsGrowth: kpi.RoundPtr(kpi.Growth(float64(current.Impressions), float64(previous.Impressions)), 1),
			CtrGrowth:         kpi.RoundPtr(kpi.Growth(currentCtr, previousCtr), 1),
			PositionGrowth:    kpi.RoundPtr(kpi.Growth(current.AvgPosition, previous.AvgPosition), 1),
		},
		Queries:   breakdowns[0],
		Pages:     breakdowns[1],
		Countries: breakdowns[2],
		Devices:   breakdowns[3],
	}, nil
}

func rankItems(items []domain.BreakdownItem, limit int) []domain.BreakdownItem {
	for i := range items {
		items[i].Ctr = kpi.Round(kpi.CTR(float64(items[i].Clicks), float64(items[i].Impressions)), 2)
		items[i].Position = kpi.Round(items[i].Position, 2)
	}
	return domain.RankBreakdown(items, limit)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
