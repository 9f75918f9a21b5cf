package seo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)

func floatPtr(v float64) *float64 {
	return &v
}

type repos struct {
	web    *mocks.MockWebAnalyticsRepository
	gsc    *mocks.MockSearchConsoleRepository
	intent *mocks.MockSeoIntentRepository
	metric *mocks.MockMetricRepository
}

func newTestService(t *testing.T, seoCfg config.Seo) (*Service, repos) {
	ctrl := gomock.NewController(t)
	r := repos{
		web:    mocks.NewMockWebAnalyticsRepository(ctrl),
		gsc:    mocks.NewMockSearchConsoleRepository(ctrl),
		intent: mocks.NewMockSeoIntentRepository(ctrl),
		metric: mocks.NewMockMetricRepository(ctrl),
	}

	service := NewService(&config.Config{Seo: seoCfg}, r.web, r.gsc, r.intent, r.metric).
		WithClock(func() time.Time { return fixedNow })

	return service, r
}

func thirtyDays(t *testing.T) domain.QueryRange {
	qr, err := domain.ResolveQueryRangeWithDefault(domain.PeriodParams{}, domain.PeriodLast30Days, fixedNow)
	require.NoError(t, err)
	return qr
}

func TestService_GetSummary(t *testing.T) {
	qr := thirtyDays(t)

	tests := []struct {
		name     string
		seoCfg   config.Seo
		setup    func(r repos)
		validate func(t *testing.T, summary *domain.SeoSummary, err error)
	}{
		{
			name:   "Sem histórico na política estrita - tendências nulas",
			seoCfg: config.Seo{},
			setup: func(r repos) {
				r.web.EXPECT().GetTotals(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f domain.WebAnalyticsFilter) (*domain.WebAnalyticsTotals, error) {
						if f.Range == qr.Current {
							return &domain.WebAnalyticsTotals{Sessions: 1200, NewUsers: 300, AvgSessionDuration: 95.6, AvgBounceRate: 41.237, Rows: 30}, nil
						}
						return &domain.WebAnalyticsTotals{}, nil
					}).Times(2)
				r.web.EXPECT().GetLatestSeoMetrics(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, summary *domain.SeoSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1200.0, summary.OrganicSessions)
				assert.Equal(t, int64(300), summary.NewUsers)
				assert.Equal(t, 96.0, summary.AvgTimeOnPage)
				assert.Equal(t, 41.24, summary.BounceRate)
				assert.Nil(t, summary.OrganicSessionsTrend)
				assert.Nil(t, summary.NewUsersTrend)
				assert.Nil(t, summary.AvgTimeOnPageTrend)
				assert.Nil(t, summary.DR)
			},
		},
		{
			name:   "Sem histórico com fallback de demonstração - tendência determinística",
			seoCfg: config.Seo{GrowthFallbackEnabled: true},
			setup: func(r repos) {
				r.web.EXPECT().GetTotals(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f domain.WebAnalyticsFilter) (*domain.WebAnalyticsTotals, error) {
						if f.Range == qr.Current {
							return &domain.WebAnalyticsTotals{Sessions: 25, NewUsers: 20, AvgSessionDuration: 40.9}, nil
						}
						return &domain.WebAnalyticsTotals{}, nil
					}).Times(2)
				r.web.EXPECT().GetLatestSeoMetrics(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, summary *domain.SeoSummary, err error) {
				require.NoError(t, err)
				require.NotNil(t, summary.OrganicSessionsTrend)
				// 25 mod 21 − 10
				assert.Equal(t, -6.0, *summary.OrganicSessionsTrend)
				// 20 mod 19 − 10
				assert.Equal(t, -9.0, *summary.NewUsersTrend)
				// 40 mod 31 − 15
				assert.Equal(t, -6.0, *summary.AvgTimeOnPageTrend)
			},
		},
		{
			name:   "Com histórico o fallback não se aplica - variação real",
			seoCfg: config.Seo{GrowthFallbackEnabled: true},
			setup: func(r repos) {
				r.web.EXPECT().GetTotals(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f domain.WebAnalyticsFilter) (*domain.WebAnalyticsTotals, error) {
						if f.Range == qr.Current {
							return &domain.WebAnalyticsTotals{Sessions: 150}, nil
						}
						return &domain.WebAnalyticsTotals{Sessions: 100}, nil
					}).Times(2)
				r.web.EXPECT().GetLatestSeoMetrics(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, summary *domain.SeoSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 50.0, *summary.OrganicSessionsTrend)
				// sem usuários novos nas duas janelas
				assert.Nil(t, summary.NewUsersTrend)
			},
		},
		{
			name:   "Métricas premium presentes - zero informado prevalece",
			seoCfg: config.Seo{},
			setup: func(r repos) {
				r.web.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(&domain.WebAnalyticsTotals{Sessions: 500}, nil).Times(2)
				r.web.EXPECT().GetLatestSeoMetrics(gomock.Any(), gomock.Any()).Return(&domain.PremiumSeoMetrics{
					OrganicSessions: floatPtr(0),
					DR:              floatPtr(0),
					Backlinks:       floatPtr(1200),
					AvgPosition:     floatPtr(8.4),
				}, nil)
			},
			validate: func(t *testing.T, summary *domain.SeoSummary, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0.0, summary.OrganicSessions)
				require.NotNil(t, summary.DR)
				assert.Equal(t, 0.0, *summary.DR)
				assert.Equal(t, 1200.0, *summary.Backlinks)
				assert.Equal(t, 8.4, *summary.AvgPosition)
				assert.Nil(t, summary.UR)
			},
		},
		{
			name:   "Search console habilitado sem posição premium - posição vem do search console",
			seoCfg: config.Seo{SearchConsoleEnabled: true},
			setup: func(r repos) {
				r.web.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(&domain.WebAnalyticsTotals{}, nil).Times(2)
				r.web.EXPECT().GetLatestSeoMetrics(gomock.Any(), gomock.Any()).Return(&domain.PremiumSeoMetrics{UR: floatPtr(12)}, nil)
				r.gsc.EXPECT().GetTotals(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f domain.SearchConsoleFilter) (*domain.SearchConsoleTotals, error) {
						if f.Range == qr.Current {
							return &domain.SearchConsoleTotals{AvgPosition: 12.34, Rows: 10}, nil
						}
						return &domain.SearchConsoleTotals{AvgPosition: 10, Rows: 10}, nil
					}).Times(2)
			},
			validate: func(t *testing.T, summary *domain.SeoSummary, err error) {
				require.NoError(t, err)
				require.NotNil(t, summary.AvgPosition)
				assert.Equal(t, 12.3, *summary.AvgPosition)
				require.NotNil(t, summary.AvgPositionTrend)
				assert.Equal(t, 23.4, *summary.AvgPositionTrend)
				assert.Equal(t, 12.0, *summary.UR)
			},
		},
		{
			name:   "Falha no banco - erro de dependência",
			seoCfg: config.Seo{},
			setup: func(r repos) {
				r.web.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(nil, errors.New("falha")).AnyTimes()
				r.web.EXPECT().GetLatestSeoMetrics(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			validate: func(t *testing.T, summary *domain.SeoSummary, err error) {
				assert.Nil(t, summary)
				assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, r := newTestService(t, tt.seoCfg)
			tt.setup(r)

			summary, err := service.GetSummary(context.Background(), "tenant-1", qr, domain.DataVisibilityPolicy{})
			tt.validate(t, summary, err)
		})
	}
}

func TestService_GetHistory_LinhaDoTempoCompleta(t *testing.T) {
	service, r := newTestService(t, config.Seo{})

	r.web.EXPECT().ListDaily(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.WebAnalyticsFilter) ([]*domain.WebAnalyticsDaily, error) {
			assert.Equal(t, "2024-03-12", f.Range.From())
			assert.Equal(t, "2024-03-14", f.Range.To())
			return []*domain.WebAnalyticsDaily{
				{
					Date:     time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
					Sessions: 100,
					Metadata: &domain.SeoMetadata{SeoMetrics: &domain.PremiumSeoMetrics{DR: floatPtr(35), TrafficCost: floatPtr(900)}},
				},
			}, nil
		})
	r.metric.EXPECT().GetDailyTrends(gomock.Any(), gomock.Any()).Return([]domain.TrendPoint{
		{Date: "2024-03-14", Impressions: 5000, Clicks: 80, Cost: 120.5},
	}, nil)

	history, err := service.GetHistory(context.Background(), "tenant-1", 3, domain.DataVisibilityPolicy{})
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, domain.SeoHistoryPoint{Date: "2024-03-12"}, history[0])

	assert.Equal(t, "2024-03-13", history[1].Date)
	assert.Equal(t, int64(100), history[1].OrganicTraffic)
	assert.Equal(t, int64(150), history[1].OrganicPages)
	assert.Equal(t, int64(220), history[1].CrawledPages)
	assert.Equal(t, 35.0, history[1].DR)
	assert.Equal(t, 900.0, history[1].OrganicTrafficValue)
	assert.Equal(t, int64(0), history[1].PaidTraffic)

	assert.Equal(t, int64(80), history[2].PaidTraffic)
	assert.Equal(t, 120.5, history[2].PaidTrafficCost)
	assert.Equal(t, int64(5000), history[2].Impressions)
	assert.Equal(t, int64(0), history[2].OrganicTraffic)
}

func TestService_GetHistory_LimiteDeDias(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		maxDays  int
		expected int
	}{
		{name: "Dias não informados - padrão de 30", days: 0, expected: DefaultHistoryDays},
		{name: "Acima do máximo - limitado a 365", days: 1000, expected: MaxHistoryDays},
		{name: "Máximo configurado menor", days: 120, maxDays: 90, expected: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, r := newTestService(t, config.Seo{HistoryMaxDays: tt.maxDays})
			r.web.EXPECT().ListDaily(gomock.Any(), gomock.Any()).Return(nil, nil)
			r.metric.EXPECT().GetDailyTrends(gomock.Any(), gomock.Any()).Return(nil, nil)

			history, err := service.GetHistory(context.Background(), "tenant-1", tt.days, domain.DataVisibilityPolicy{})
			require.NoError(t, err)
			assert.Len(t, history, tt.expected)
			assert.Equal(t, "2024-03-14", history[len(history)-1].Date)
		})
	}
}

func TestService_GetKeywordIntent_FalhaViraListaVazia(t *testing.T) {
	service, r := newTestService(t, config.Seo{})

	r.intent.EXPECT().GetIntentSummary(gomock.Any(), "tenant-1", gomock.Any()).Return(nil, errors.New("relation does not exist"))

	intents, err := service.GetKeywordIntent(context.Background(), "tenant-1")
	assert.NoError(t, err)
	assert.NotNil(t, intents)
	assert.Empty(t, intents)
}

func TestService_GetTrafficByLocation(t *testing.T) {
	t.Run("Códigos de país preenchidos", func(t *testing.T) {
		service, r := newTestService(t, config.Seo{})
		r.web.EXPECT().GetTrafficByLocation(gomock.Any(), gomock.Any(), 10).Return([]domain.LocationTraffic{
			{Country: "Thailand", City: "Bangkok", Traffic: 900},
			{Country: "Brazil", City: "São Paulo", Traffic: 100},
		}, nil)

		locations, err := service.GetTrafficByLocation(context.Background(), "tenant-1", domain.DataVisibilityPolicy{})
		require.NoError(t, err)
		require.Len(t, locations, 2)
		assert.Equal(t, "TH", locations[0].CountryCode)
		assert.Equal(t, "XX", locations[1].CountryCode)
	})

	t.Run("Falha na consulta - lista vazia", func(t *testing.T) {
		service, r := newTestService(t, config.Seo{})
		r.web.EXPECT().GetTrafficByLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		locations, err := service.GetTrafficByLocation(context.Background(), "tenant-1", domain.DataVisibilityPolicy{})
		assert.NoError(t, err)
		assert.Empty(t, locations)
	})
}

func TestService_GetSearchConsoleOverview(t *testing.T) {
	qr := thirtyDays(t)

	t.Run("Recurso desabilitado", func(t *testing.T) {
		service, _ := newTestService(t, config.Seo{SearchConsoleEnabled: false})

		overview, err := service.GetSearchConsoleOverview(context.Background(), "tenant-1", qr, "", 10, domain.DataVisibilityPolicy{})
		assert.Nil(t, overview)
		assert.ErrorIs(t, err, domain.ErrFeatureDisabled)
	})

	t.Run("Resumo e ranking com desempate", func(t *testing.T) {
		service, r := newTestService(t, config.Seo{SearchConsoleEnabled: true})

		r.gsc.EXPECT().GetTotals(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f domain.SearchConsoleFilter) (*domain.SearchConsoleTotals, error) {
				assert.Equal(t, "https://loja.example", f.SiteURL)
				if f.Range == qr.Current {
					return &domain.SearchConsoleTotals{Clicks: 300, Impressions: 10000, AvgPosition: 7.456, Rows: 40}, nil
				}
				return &domain.SearchConsoleTotals{Clicks: 200, Impressions: 10000, AvgPosition: 8, Rows: 40}, nil
			}).Times(2)

		r.gsc.EXPECT().GetBreakdown(gomock.Any(), gomock.Any(), domain.DimensionQuery, 2).Return([]domain.BreakdownItem{
			{Key: "tênis", Clicks: 50, Impressions: 1000, Position: 3.333},
			{Key: "bota", Clicks: 50, Impressions: 1000, Position: 4},
			{Key: "sandália", Clicks: 50, Impressions: 2000, Position: 5},
		}, nil)
		r.gsc.EXPECT().GetBreakdown(gomock.Any(), gomock.Any(), domain.DimensionPage, 2).Return([]domain.BreakdownItem{}, nil)
		r.gsc.EXPECT().GetBreakdown(gomock.Any(), gomock.Any(), domain.DimensionCountry, 2).Return(nil, nil)
		r.gsc.EXPECT().GetBreakdown(gomock.Any(), gomock.Any(), domain.DimensionDevice, 2).Return([]domain.BreakdownItem{
			{Key: "MOBILE", Clicks: 10, Impressions: 0},
		}, nil)

		overview, err := service.GetSearchConsoleOverview(context.Background(), "tenant-1", qr, "https://loja.example", 2, domain.DataVisibilityPolicy{})
		require.NoError(t, err)

		assert.Equal(t, 3.0, overview.Summary.Ctr)
		assert.Equal(t, 7.46, overview.Summary.AvgPosition)
		assert.Equal(t, 50.0, *overview.Summary.ClicksGrowth)
		assert.Equal(t, 0.0, *overview.Summary.ImpressionsGrowth)
		assert.Equal(t, 50.0, *overview.Summary.CtrGrowth)

		require.Len(t, overview.Queries, 2)
		assert.Equal(t, "sandália", overview.Queries[0].Key)
		assert.Equal(t, "bota", overview.Queries[1].Key)
		assert.Equal(t, 5.0, overview.Queries[1].Ctr)

		assert.Empty(t, overview.Pages)
		assert.Empty(t, overview.Countries)
		assert.Equal(t, 0.0, overview.Devices[0].Ctr)
	})

	t.Run("Limite acima do máximo", func(t *testing.T) {
		service, r := newTestService(t, config.Seo{SearchConsoleEnabled: true})

		r.gsc.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(&domain.SearchConsoleTotals{}, nil).Times(2)
		r.gsc.EXPECT().GetBreakdown(gomock.Any(), gomock.Any(), gomock.Any(), MaxBreakdownLimit).Return(nil, nil).Times(4)

		overview, err := service.GetSearchConsoleOverview(context.Background(), "tenant-1", qr, "", 500, domain.DataVisibilityPolicy{})
		require.NoError(t, err)
		assert.Nil(t, overview.Summary.ClicksGrowth)
		assert.Nil(t, overview.Summary.PositionGrowth)
	})
}
