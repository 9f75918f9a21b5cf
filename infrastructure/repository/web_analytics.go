package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	webAnalyticsTable = "web_analytics_daily w"

	// seoMetricsPresent só aceita o bloco quando ele é um objeto; "null" no JSON conta como ausente
	seoMetricsPresent = "jsonb_typeof(w.metadata -> 'seoMetrics') = 'object'"
	locationPresent   = "jsonb_typeof(w.metadata -> 'location') = 'object'"
)

type WebAnalyticsRepository interface {
	GetTotals(ctx context.Context, filter domain.WebAnalyticsFilter) (*domain.WebAnalyticsTotals, error)
	GetLatestSeoMetrics(ctx context.Context, filter domain.WebAnalyticsFilter) (*domain.PremiumSeoMetrics, error)
	ListDaily(ctx context.Context, filter domain.WebAnalyticsFilter) ([]*domain.WebAnalyticsDaily, error)
	GetTrafficByLocation(ctx context.Context, filter domain.WebAnalyticsFilter, limit int) ([]domain.LocationTraffic, error)
}

type webAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewWebAnalyticsRepository(conn *postgres.Connection) WebAnalyticsRepository {
	return &webAnalyticsRepository{
		conn: conn,
	}
}

func webAnalyticsBaseQuery(builder squirrel.SelectBuilder, filter domain.WebAnalyticsFilter) squirrel.SelectBuilder {
	builder = builder.
		From(webAnalyticsTable).
		Where(squirrel.Eq{"w.tenant_id": filter.TenantID})

	builder = withDateRange(builder, "w.date", filter.Range)
	return withVisibility(builder, "w.is_mock_data", filter.Visibility).PlaceholderFormat(squirrel.Dollar)
}

func buildWebAnalyticsTotalsQuery(filter domain.WebAnalyticsFilter) squirrel.SelectBuilder {
	return webAnalyticsBaseQuery(squirrel.Select(
		"COALESCE(SUM(w.sessions), 0)",
		"COALESCE(SUM(w.new_users), 0)",
		"COALESCE(SUM(w.page_views), 0)",
		"COALESCE(AVG(w.avg_session_duration), 0)",
		"COALESCE(AVG(w.bounce_rate), 0)",
		"COALESCE(AVG(w.engagement_rate), 0)",
		"COUNT(*)",
	), filter)
}

// buildLatestSeoMetricsQuery busca a linha mais recente com métricas premium até o fim da janela
func buildLatestSeoMetricsQuery(filter domain.WebAnalyticsFilter) squirrel.SelectBuilder {
	builder := squirrel.
		Select("w.metadata").
		From(webAnalyticsTable).
		Where(squirrel.Eq{"w.tenant_id": filter.TenantID}).
		Where(seoMetricsPresent)

	if !filter.Range.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{"w.date": filter.Range.To()})
	}

	return withVisibility(builder, "w.is_mock_data", filter.Visibility).
		OrderBy("w.date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
}

func buildWebAnalyticsDailyQuery(filter domain.WebAnalyticsFilter) squirrel.SelectBuilder {
	return webAnalyticsBaseQuery(squirrel.Select(
		"w.id, w.tenant_id, w.date, w.sessions, w.active_users, w.new_users, w.engagement_rate, w.bounce_rate, w.avg_session_duration, w.page_views, w.metadata, w.is_mock_data",
	), filter).
		OrderBy("w.date ASC")
}

func buildTrafficByLocationQuery(filter domain.WebAnalyticsFilter, limit int) squirrel.SelectBuilder {
	return webAnalyticsBaseQuery(squirrel.Select(
		"COALESCE(w.metadata -> 'location' ->> 'country', '') AS country",
		"COALESCE(w.metadata -> 'location' ->> 'city', '') AS city",
		"COALESCE(SUM(w.sessions), 0) AS traffic",
	), filter).
		Where(locationPresent).
		GroupBy("country", "city").
		OrderBy("traffic DESC", "country ASC", "city ASC").
		Limit(uint64(limit))
}

func (r *webAnalyticsRepository) GetTotals(ctx context.Context, filter domain.WebAnalyticsFilter) (*domain.WebAnalyticsTotals, error) {
	query, args, err := buildWebAnalyticsTotalsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.WebAnalyticsTotals{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.Sessions,
		&totals.NewUsers,
		&totals.PageViews,
		&totals.AvgSessionDuration,
		&totals.AvgBounceRate,
		&totals.AvgEngagementRate,
		&totals.Rows,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar web analytics: %w", err)
	}

	return totals, nil
}

func (r *webAnalyticsRepository) GetLatestSeoMetrics(ctx context.Context, filter domain.WebAnalyticsFilter) (*domain.PremiumSeoMetrics, error) {
	query, args, err := buildLatestSeoMetricsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var metadataJSON []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&metadataJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar métricas premium de SEO: %w", err)
	}

	metadata, err := decodeSeoMetadata(metadataJSON)
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		return nil, nil
	}

	return metadata.SeoMetrics, nil
}

func (r *webAnalyticsRepository) ListDaily(ctx context.Context, filter domain.WebAnalyticsFilter) ([]*domain.WebAnalyticsDaily, error) {
	query, args, err := buildWebAnalyticsDailyQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	days := make([]*domain.WebAnalyticsDaily, 0)
	for rows.Next() {
		day := &domain.WebAnalyticsDaily{}
		var metadataJSON []byte

		err := rows.Scan(
			&day.ID,
			&day.TenantID,
			&day.Date,
			&day.Sessions,
			&day.ActiveUsers,
			&day.NewUsers,
			&day.EngagementRate,
			&day.BounceRate,
			&day.AvgSessionDuration,
			&day.PageViews,
			&metadataJSON,
			&day.IsMockData,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear web analytics: %w", err)
		}

		if day.Metadata, err = decodeSeoMetadata(metadataJSON); err != nil {
			return nil, err
		}

		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return days, nil
}

func (r *webAnalyticsRepository) GetTrafficByLocation(ctx context.Context, filter domain.WebAnalyticsFilter, limit int) ([]domain.LocationTraffic, error) {
	query, args, err := buildTrafficByLocationQuery(filter, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.LocationTraffic, 0)
	for rows.Next() {
		var location domain.LocationTraffic
		if err := rows.Scan(&location.Country, &location.City, &location.Traffic); err != nil {
			return nil, fmt.Errorf("erro ao escanear tráfego por localização: %w", err)
		}
		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return locations, nil
}

// decodeSeoMetadata converte a coluna jsonb; NULL no banco vira nil
func decodeSeoMetadata(raw []byte) (*domain.SeoMetadata, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	metadata := &domain.SeoMetadata{}
	if err := json.Unmarshal(raw, metadata); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON de metadata: %w", err)
	}

	return metadata, nil
}
