package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// memoryCache guarda os valores serializados, como o redis faria
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	c.sets++
	return nil
}

func testConfig() *config.Config {
	return &config.Config{Dashboard: config.Dashboard{RecentCampaignsLimit: 5}}
}

func sevenDays() domain.QueryRange {
	qr, _ := domain.ResolveQueryRange(domain.PeriodParams{Period: "7d"}, time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC))
	return qr
}

// scenarioTotals são 3 campanhas × 7 dias com 1000 impressões, 50 cliques, 500 de investimento, 5 conversões e 1500 de receita por dia
func scenarioTotals() *domain.MetricTotals {
	return &domain.MetricTotals{
		Impressions: 21000,
		Clicks:      1050,
		Spend:       decimal.NewFromInt(10500),
		Conversions: 105,
		Revenue:     decimal.NewFromInt(31500),
		Rows:        21,
	}
}

func TestBuildSummary_Cenario(t *testing.T) {
	summary := BuildSummary(scenarioTotals())

	assert.Equal(t, int64(21000), summary.TotalImpressions)
	assert.Equal(t, int64(1050), summary.TotalClicks)
	assert.Equal(t, 10500.0, summary.TotalCost)
	assert.Equal(t, int64(105), summary.TotalConversions)
	assert.Equal(t, 5.0, summary.AverageCtr)
	assert.Equal(t, 3.0, summary.AverageRoas)
	assert.Equal(t, 200.0, summary.AverageRoi)
	assert.Equal(t, 500.0, summary.AverageCpm)
}

func TestBuildGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  *domain.MetricTotals
		previous *domain.MetricTotals
		validate func(t *testing.T, g domain.DashboardGrowth)
	}{
		{
			name:     "Sem período anterior - todas as variações nulas",
			current:  scenarioTotals(),
			previous: &domain.MetricTotals{},
			validate: func(t *testing.T, g domain.DashboardGrowth) {
				assert.Nil(t, g.ImpressionsGrowth)
				assert.Nil(t, g.ClicksGrowth)
				assert.Nil(t, g.CostGrowth)
				assert.Nil(t, g.ConversionsGrowth)
				assert.Nil(t, g.CtrGrowth)
				assert.Nil(t, g.CpmGrowth)
				assert.Nil(t, g.RoasGrowth)
				assert.Nil(t, g.RoiGrowth)
			},
		},
		{
			name:    "Período anterior com metade - crescimento de 100% nas somas",
			current: scenarioTotals(),
			previous: &domain.MetricTotals{
				Impressions: 10500,
				Clicks:      525,
				Spend:       decimal.NewFromInt(5250),
				Conversions: 50,
				Revenue:     decimal.NewFromInt(10500),
			},
			validate: func(t *testing.T, g domain.DashboardGrowth) {
				require.NotNil(t, g.ImpressionsGrowth)
				assert.Equal(t, 100.0, *g.ImpressionsGrowth)
				assert.Equal(t, 100.0, *g.CostGrowth)
				assert.Equal(t, 110.0, *g.ConversionsGrowth)
				assert.Equal(t, 0.0, *g.CtrGrowth)
				// ROAS 3.0 contra 2.0
				assert.Equal(t, 50.0, *g.RoasGrowth)
				// ROI 200 contra 100
				assert.Equal(t, 100.0, *g.RoiGrowth)
			},
		},
		{
			name:    "ROI anterior negativo - variação de ROI nula",
			current: scenarioTotals(),
			previous: &domain.MetricTotals{
				Impressions: 1000,
				Clicks:      10,
				Spend:       decimal.NewFromInt(100),
				Revenue:     decimal.NewFromInt(50),
			},
			validate: func(t *testing.T, g domain.DashboardGrowth) {
				assert.Nil(t, g.RoiGrowth)
				assert.NotNil(t, g.RoasGrowth)
			},
		},
		{
			name:    "Variação arredondada com uma casa",
			current: &domain.MetricTotals{Impressions: 1000},
			previous: &domain.MetricTotals{
				Impressions: 3000,
			},
			validate: func(t *testing.T, g domain.DashboardGrowth) {
				require.NotNil(t, g.ImpressionsGrowth)
				assert.Equal(t, -66.7, *g.ImpressionsGrowth)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildGrowth(tt.current, tt.previous))
		})
	}
}

func TestService_GetOverview(t *testing.T) {
	qr := sevenDays()
	realOnly := domain.DataVisibilityPolicy{IncludeMockData: false}

	tests := []struct {
		name     string
		policy   domain.DataVisibilityPolicy
		setup    func(metricRepo *mocks.MockMetricRepository, campaignRepo *mocks.MockCampaignRepository)
		validate func(t *testing.T, overview *domain.DashboardOverview, err error)
	}{
		{
			name:   "Cenário de 3 campanhas - resumo e campanhas recentes",
			policy: realOnly,
			setup: func(metricRepo *mocks.MockMetricRepository, campaignRepo *mocks.MockCampaignRepository) {
				metricRepo.EXPECT().
					GetTotals(gomock.Any(), domain.MetricFilter{TenantID: "tenant-1", Range: qr.Current, Visibility: realOnly}).
					Return(scenarioTotals(), nil)
				metricRepo.EXPECT().
					GetTotals(gomock.Any(), domain.MetricFilter{TenantID: "tenant-1", Range: qr.Previous, Visibility: realOnly}).
					Return(&domain.MetricTotals{}, nil)
				metricRepo.EXPECT().
					GetDailyTrends(gomock.Any(), gomock.Any()).
					Return([]domain.TrendPoint{
						{Date: "2024-03-08", Impressions: 3000, Clicks: 150, Cost: 1500, Conversions: 15},
					}, nil)

				campaignRepo.EXPECT().
					ListRecent(gomock.Any(), "tenant-1", 5, realOnly).
					Return([]*domain.Campaign{
						{ID: "c1", Name: "A", Budget: decimal.NewFromInt(7000)},
						{ID: "c2", Name: "B"},
					}, nil)
				metricRepo.EXPECT().
					ListDailyRows(gomock.Any(), domain.MetricFilter{
						TenantID:    "tenant-1",
						Range:       qr.Current,
						Visibility:  realOnly,
						CampaignIDs: []string{"c1", "c2"},
					}).
					Return([]domain.MetricRow{
						{CampaignID: "c1", Impressions: 1000, Clicks: 50, Spend: decimal.NewFromInt(3500), Conversions: 5},
					}, nil)
			},
			validate: func(t *testing.T, overview *domain.DashboardOverview, err error) {
				require.NoError(t, err)
				assert.Equal(t, 10500.0, overview.Summary.TotalCost)
				assert.Equal(t, 200.0, overview.Summary.AverageRoi)
				assert.Nil(t, overview.Growth.CostGrowth)
				assert.Len(t, overview.Trends, 1)
				assert.False(t, overview.IsDemo)

				require.Len(t, overview.RecentCampaigns, 2)
				assert.Equal(t, 3500.0, overview.RecentCampaigns[0].Spending)
				require.NotNil(t, overview.RecentCampaigns[0].BudgetUtilization)
				assert.Equal(t, 50.0, *overview.RecentCampaigns[0].BudgetUtilization)
				assert.Equal(t, 0.0, overview.RecentCampaigns[1].Spending)
				assert.Nil(t, overview.RecentCampaigns[1].BudgetUtilization)
			},
		},
		{
			name:   "Sem linhas - resumo zerado, variações nulas e tendências vazias",
			policy: realOnly,
			setup: func(metricRepo *mocks.MockMetricRepository, campaignRepo *mocks.MockCampaignRepository) {
				metricRepo.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(&domain.MetricTotals{}, nil).Times(2)
				metricRepo.EXPECT().GetDailyTrends(gomock.Any(), gomock.Any()).Return(nil, nil)
				campaignRepo.EXPECT().ListRecent(gomock.Any(), "tenant-1", 5, realOnly).Return(nil, nil)
			},
			validate: func(t *testing.T, overview *domain.DashboardOverview, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.DashboardSummary{}, overview.Summary)
				assert.Equal(t, domain.DashboardGrowth{}, overview.Growth)
				assert.NotNil(t, overview.Trends)
				assert.Empty(t, overview.Trends)
				assert.NotNil(t, overview.RecentCampaigns)
				assert.Empty(t, overview.RecentCampaigns)
			},
		},
		{
			name:   "Linhas sintéticas na janela atual - isDemo verdadeiro",
			policy: domain.DataVisibilityPolicy{IncludeMockData: true},
			setup: func(metricRepo *mocks.MockMetricRepository, campaignRepo *mocks.MockCampaignRepository) {
				totals := scenarioTotals()
				totals.MockRows = 3
				metricRepo.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(totals, nil)
				metricRepo.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(&domain.MetricTotals{}, nil)
				metricRepo.EXPECT().GetDailyTrends(gomock.Any(), gomock.Any()).Return([]domain.TrendPoint{}, nil)
				campaignRepo.EXPECT().ListRecent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, overview *domain.DashboardOverview, err error) {
				require.NoError(t, err)
				assert.True(t, overview.IsDemo)
			},
		},
		{
			name:   "Falha no banco - erro de dependência propagado",
			policy: realOnly,
			setup: func(metricRepo *mocks.MockMetricRepository, campaignRepo *mocks.MockCampaignRepository) {
				metricRepo.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).AnyTimes()
				metricRepo.EXPECT().GetDailyTrends(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				campaignRepo.EXPECT().ListRecent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, overview *domain.DashboardOverview, err error) {
				assert.Nil(t, overview)
				assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			metricRepo := mocks.NewMockMetricRepository(ctrl)
			campaignRepo := mocks.NewMockCampaignRepository(ctrl)
			tt.setup(metricRepo, campaignRepo)

			service := NewService(testConfig(), metricRepo, campaignRepo)
			overview, err := service.GetOverview(context.Background(), "tenant-1", qr, tt.policy)
			tt.validate(t, overview, err)
		})
	}
}

func TestService_GetOverview_IntervaloSemDadosAnteriores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qr, err := domain.ResolveQueryRange(domain.PeriodParams{StartDate: "2026-01-01", EndDate: "2026-01-31"}, time.Now())
	require.NoError(t, err)

	metricRepo := mocks.NewMockMetricRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)

	metricRepo.EXPECT().
		GetTotals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.MetricFilter) (*domain.MetricTotals, error) {
			if f.Range == qr.Current {
				return scenarioTotals(), nil
			}
			assert.Equal(t, "2025-12-01", f.Range.From())
			assert.Equal(t, "2025-12-31", f.Range.To())
			return &domain.MetricTotals{}, nil
		}).
		Times(2)
	metricRepo.EXPECT().GetDailyTrends(gomock.Any(), gomock.Any()).Return(nil, nil)
	campaignRepo.EXPECT().ListRecent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	overview, err := NewService(testConfig(), metricRepo, campaignRepo).
		GetOverview(context.Background(), "tenant-1", qr, domain.DataVisibilityPolicy{})
	require.NoError(t, err)

	assert.Equal(t, int64(21000), overview.Summary.TotalImpressions)
	assert.Equal(t, domain.DashboardGrowth{}, overview.Growth)
}

func TestService_GetOverview_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qr := sevenDays()
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)

	previous := &domain.MetricTotals{
		Impressions: 18000,
		Clicks:      800,
		Spend:       decimal.RequireFromString("9876.54"),
		Conversions: 90,
		Revenue:     decimal.RequireFromString("20000.01"),
	}

	metricRepo.EXPECT().
		GetTotals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.MetricFilter) (*domain.MetricTotals, error) {
			if f.Range == qr.Current {
				return scenarioTotals(), nil
			}
			return previous, nil
		}).
		Times(4)
	metricRepo.EXPECT().GetDailyTrends(gomock.Any(), gomock.Any()).Return([]domain.TrendPoint{}, nil).Times(2)
	campaignRepo.EXPECT().ListRecent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	service := NewService(testConfig(), metricRepo, campaignRepo)

	first, err := service.GetOverview(context.Background(), "tenant-1", qr, domain.DataVisibilityPolicy{})
	require.NoError(t, err)
	second, err := service.GetOverview(context.Background(), "tenant-1", qr, domain.DataVisibilityPolicy{})
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestService_GetOverview_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	qr := sevenDays()
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)

	// Só a primeira chamada chega ao banco
	metricRepo.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(scenarioTotals(), nil).Times(2)
	metricRepo.EXPECT().GetDailyTrends(gomock.Any(), gomock.Any()).Return([]domain.TrendPoint{}, nil).Times(1)
	campaignRepo.EXPECT().ListRecent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	cache := newMemoryCache()
	service := NewService(testConfig(), metricRepo, campaignRepo).WithCache(cache, time.Minute)

	first, err := service.GetOverview(context.Background(), "tenant-1", qr, domain.DataVisibilityPolicy{})
	require.NoError(t, err)
	second, err := service.GetOverview(context.Background(), "tenant-1", qr, domain.DataVisibilityPolicy{})
	require.NoError(t, err)

	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Growth, second.Growth)
}

func TestCacheKey_PoliticaSeparaEntradas(t *testing.T) {
	qr := sevenDays()

	all := cacheKey("tenant-1", qr, domain.DataVisibilityPolicy{IncludeMockData: true})
	realKey := cacheKey("tenant-1", qr, domain.DataVisibilityPolicy{IncludeMockData: false})
	other := cacheKey("tenant-2", qr, domain.DataVisibilityPolicy{IncludeMockData: true})

	assert.NotEqual(t, all, realKey)
	assert.NotEqual(t, all, other)
}
