package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func testRange() domain.DateRange {
	return domain.NewDateRange(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	)
}

func TestBuildMetricTotalsQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.MetricFilter
		validate func(t *testing.T, query string, args []interface{})
	}{
		{
			name: "Sem dados sintéticos - deve filtrar is_mock_data",
			filter: domain.MetricFilter{
				TenantID:   "tenant-1",
				Range:      testRange(),
				Visibility: domain.DataVisibilityPolicy{IncludeMockData: false},
			},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.Contains(t, query, "FROM metrics m")
				assert.Contains(t, query, "m.tenant_id = $1")
				assert.Contains(t, query, "m.date >= $2")
				assert.Contains(t, query, "m.date <= $3")
				assert.Contains(t, query, "m.is_mock_data = $4")
				assert.Equal(t, []interface{}{"tenant-1", "2024-03-01", "2024-03-07", false}, args)
			},
		},
		{
			name: "Com dados sintéticos - não deve filtrar is_mock_data",
			filter: domain.MetricFilter{
				TenantID:   "tenant-1",
				Range:      testRange(),
				Visibility: domain.DataVisibilityPolicy{IncludeMockData: true},
			},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.NotContains(t, query, "m.is_mock_data =")
				assert.Contains(t, query, "COUNT(*) FILTER (WHERE m.is_mock_data)")
				assert.Len(t, args, 3)
			},
		},
		{
			name: "Com campanhas - deve restringir por campaign_id",
			filter: domain.MetricFilter{
				TenantID:    "tenant-1",
				Range:       testRange(),
				Visibility:  domain.DataVisibilityPolicy{IncludeMockData: true},
				CampaignIDs: []string{"c1", "c2"},
			},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.Contains(t, query, "m.campaign_id IN ($2,$3)")
				assert.Equal(t, []interface{}{"tenant-1", "c1", "c2", "2024-03-01", "2024-03-07"}, args)
			},
		},
		{
			name: "Intervalo vazio - não deve filtrar por data",
			filter: domain.MetricFilter{
				TenantID:   "tenant-1",
				Visibility: domain.DataVisibilityPolicy{IncludeMockData: true},
			},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.NotContains(t, query, "m.date")
				assert.Equal(t, []interface{}{"tenant-1"}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildMetricTotalsQuery(tt.filter).ToSql()
			require.NoError(t, err)
			tt.validate(t, query, args)
		})
	}
}

func TestBuildMetricTrendsQuery(t *testing.T) {
	query, _, err := buildMetricTrendsQuery(domain.MetricFilter{
		TenantID: "tenant-1",
		Range:    testRange(),
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "GROUP BY m.date")
	assert.Contains(t, query, "ORDER BY m.date ASC")
}

func TestBuildCampaignListQuery(t *testing.T) {
	filters := domain.CampaignFilters{
		TenantID:   "tenant-1",
		Status:     "ACTIVE",
		Platform:   "FACEBOOK",
		Search:     "verão",
		Page:       3,
		Limit:      20,
		Visibility: domain.DataVisibilityPolicy{IncludeMockData: false},
	}.Normalize()

	query, args, err := buildCampaignListQuery(filters).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "c.tenant_id = $1")
	assert.Contains(t, query, "c.status = $2")
	assert.Contains(t, query, "c.platform = $3")
	assert.Contains(t, query, "c.name ILIKE $4")
	assert.Contains(t, query, "c.is_mock_data = $5")
	assert.Contains(t, query, "ORDER BY c.created_at DESC, c.id ASC")
	assert.Contains(t, query, "LIMIT 20 OFFSET 40")
	assert.Equal(t, []interface{}{"tenant-1", domain.CampaignStatus("ACTIVE"), domain.Platform("FACEBOOK"), "%verão%", false}, args)
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected string
	}{
		{name: "Texto comum", term: "verão", expected: "%verão%"},
		{name: "Percentual literal", term: "50% off", expected: `%50\% off%`},
		{name: "Sublinhado literal", term: "black_friday", expected: `%black\_friday%`},
		{name: "Barra invertida literal", term: `a\b`, expected: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsPattern(tt.term))
		})
	}
}

func TestBuildCampaignListQuery_BuscaComCuringas(t *testing.T) {
	filters := domain.CampaignFilters{TenantID: "tenant-1", Search: "100%_real"}.Normalize()

	_, args, err := buildCampaignListQuery(filters).ToSql()
	require.NoError(t, err)

	assert.Contains(t, args, `%100\%\_real%`)
}

func TestBuildCampaignCountQuery(t *testing.T) {
	query, args, err := buildCampaignCountQuery(domain.CampaignFilters{
		TenantID:   "tenant-1",
		Visibility: domain.DataVisibilityPolicy{IncludeMockData: true},
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT COUNT(*) FROM campaigns c")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []interface{}{"tenant-1"}, args)
}

func TestBuildRecentCampaignsQuery(t *testing.T) {
	query, args, err := buildRecentCampaignsQuery("tenant-1", 5, domain.DataVisibilityPolicy{}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY c.updated_at DESC, c.id ASC")
	assert.Contains(t, query, "LIMIT 5")
	assert.Equal(t, []interface{}{"tenant-1", false}, args)
}

func TestBuildSearchConsoleBreakdownQuery(t *testing.T) {
	filter := domain.SearchConsoleFilter{
		TenantID:   "tenant-1",
		Range:      testRange(),
		Visibility: domain.DataVisibilityPolicy{IncludeMockData: true},
	}

	tests := []struct {
		name      string
		dimension domain.SearchConsoleDimension
		wantErr   bool
		column    string
	}{
		{name: "Dimensão query", dimension: domain.DimensionQuery, column: "s.query"},
		{name: "Dimensão page", dimension: domain.DimensionPage, column: "s.page"},
		{name: "Dimensão country", dimension: domain.DimensionCountry, column: "s.country"},
		{name: "Dimensão device", dimension: domain.DimensionDevice, column: "s.device"},
		{name: "Dimensão inválida - deve retornar erro", dimension: "user_agent; DROP TABLE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, err := buildSearchConsoleBreakdownQuery(filter, tt.dimension, 10)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			query, _, err := builder.ToSql()
			require.NoError(t, err)

			assert.Contains(t, query, tt.column+" AS dimension_key")
			assert.Contains(t, query, "GROUP BY "+tt.column)
			assert.Contains(t, query, "ORDER BY clicks DESC, impressions DESC, dimension_key ASC")
			assert.Contains(t, query, "LIMIT 10")
		})
	}
}

func TestBuildSearchConsoleTotalsQuery_SiteURL(t *testing.T) {
	query, args, err := buildSearchConsoleTotalsQuery(domain.SearchConsoleFilter{
		TenantID:   "tenant-1",
		SiteURL:    "https://loja.example",
		Visibility: domain.DataVisibilityPolicy{IncludeMockData: true},
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "s.site_url = $2")
	assert.Equal(t, []interface{}{"tenant-1", "https://loja.example"}, args)
}

func TestBuildLatestSeoMetricsQuery(t *testing.T) {
	query, args, err := buildLatestSeoMetricsQuery(domain.WebAnalyticsFilter{
		TenantID:   "tenant-1",
		Range:      testRange(),
		Visibility: domain.DataVisibilityPolicy{IncludeMockData: true},
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, seoMetricsPresent)
	assert.Contains(t, query, "w.date <= $2")
	assert.NotContains(t, query, "w.date >=")
	assert.Contains(t, query, "ORDER BY w.date DESC")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []interface{}{"tenant-1", "2024-03-07"}, args)
}

func TestBuildTrafficByLocationQuery(t *testing.T) {
	query, _, err := buildTrafficByLocationQuery(domain.WebAnalyticsFilter{
		TenantID: "tenant-1",
		Range:    testRange(),
	}, 10).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, locationPresent)
	assert.Contains(t, query, "GROUP BY country, city")
	assert.Contains(t, query, "ORDER BY traffic DESC, country ASC, city ASC")
	assert.Contains(t, query, "w.is_mock_data = $4")
}

func TestBuildIntentSummaryQuery(t *testing.T) {
	query, args, err := buildIntentSummaryQuery("tenant-1", testRange()).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "GROUP BY si.type")
	assert.Equal(t, []interface{}{"tenant-1", "2024-03-01", "2024-03-07"}, args)
}

func TestBuildSnapshotUpsert(t *testing.T) {
	growth := 12.5
	query, args, err := buildSnapshotUpsert(&domain.MonthlySnapshot{
		ID:       "snap-1",
		TenantID: "tenant-1",
		Period:   "03-2024",
		Summary:  domain.DashboardSummary{TotalImpressions: 100},
		Growth:   domain.DashboardGrowth{ImpressionsGrowth: &growth},
		IsDemo:   true,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO monthly_snapshots")
	assert.Contains(t, query, "ON CONFLICT (tenant_id, period) DO UPDATE SET")
	require.Len(t, args, 6)
	assert.Equal(t, "snap-1", args[0])
	assert.Equal(t, "03-2024", args[2])
	assert.Contains(t, string(args[4].([]byte)), `"impressionsGrowth":12.5`)
	assert.Equal(t, true, args[5])
}

func TestDecodeSeoMetadata(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		validate func(t *testing.T, metadata *domain.SeoMetadata, err error)
	}{
		{
			name: "Metadata vazio - deve retornar nil",
			raw:  nil,
			validate: func(t *testing.T, metadata *domain.SeoMetadata, err error) {
				assert.NoError(t, err)
				assert.Nil(t, metadata)
			},
		},
		{
			name: "Métricas premium com zero - zero deve ser preservado",
			raw:  []byte(`{"seoMetrics":{"dr":0,"backlinks":120},"location":{"country":"Thailand","city":"Bangkok"}}`),
			validate: func(t *testing.T, metadata *domain.SeoMetadata, err error) {
				require.NoError(t, err)
				require.NotNil(t, metadata.SeoMetrics)
				require.NotNil(t, metadata.SeoMetrics.DR)
				assert.Equal(t, 0.0, *metadata.SeoMetrics.DR)
				assert.Equal(t, 120.0, *metadata.SeoMetrics.Backlinks)
				assert.Nil(t, metadata.SeoMetrics.UR)
				assert.Equal(t, "Bangkok", metadata.Location.City)
			},
		},
		{
			name: "JSON inválido - deve retornar erro",
			raw:  []byte(`{"seoMetrics":`),
			validate: func(t *testing.T, metadata *domain.SeoMetadata, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata, err := decodeSeoMetadata(tt.raw)
			tt.validate(t, metadata, err)
		})
	}
}
