package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	metricsTable = "metrics m"
)

type MetricRepository interface {
	GetTotals(ctx context.Context, filter domain.MetricFilter) (*domain.MetricTotals, error)
	GetDailyTrends(ctx context.Context, filter domain.MetricFilter) ([]domain.TrendPoint, error)
	ListDailyRows(ctx context.Context, filter domain.MetricFilter) ([]domain.MetricRow, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func metricsBaseQuery(builder squirrel.SelectBuilder, filter domain.MetricFilter) squirrel.SelectBuilder {
	builder = builder.
		From(metricsTable).
		Where(squirrel.Eq{"m.tenant_id": filter.TenantID})

	if len(filter.CampaignIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"m.campaign_id": filter.CampaignIDs})
	}

	builder = withDateRange(builder, "m.date", filter.Range)
	builder = withVisibility(builder, "m.is_mock_data", filter.Visibility)

	return builder.PlaceholderFormat(squirrel.Dollar)
}

func buildMetricTotalsQuery(filter domain.MetricFilter) squirrel.SelectBuilder {
	return metricsBaseQuery(squirrel.Select(
		"COALESCE(SUM(m.impressions), 0)",
		"COALESCE(SUM(m.clicks), 0)",
		"COALESCE(SUM(m.spend), 0)",
		"COALESCE(SUM(m.conversions), 0)",
		"COALESCE(SUM(m.revenue), 0)",
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE m.is_mock_data)",
	), filter)
}

func buildMetricTrendsQuery(filter domain.MetricFilter) squirrel.SelectBuilder {
	return metricsBaseQuery(squirrel.Select(
		"m.date",
		"COALESCE(SUM(m.impressions), 0)",
		"COALESCE(SUM(m.clicks), 0)",
		"COALESCE(SUM(m.spend), 0)",
		"COALESCE(SUM(m.conversions), 0)",
	), filter).
		GroupBy("m.date").
		OrderBy("m.date ASC")
}

func buildMetricRowsQuery(filter domain.MetricFilter) squirrel.SelectBuilder {
	return metricsBaseQuery(squirrel.Select(
		"m.campaign_id, m.date, m.impressions, m.clicks, m.spend, m.conversions, m.revenue, m.is_mock_data",
	), filter).
		OrderBy("m.date ASC", "m.campaign_id ASC")
}

func (r *metricRepository) GetTotals(ctx context.Context, filter domain.MetricFilter) (*domain.MetricTotals, error) {
	query, args, err := buildMetricTotalsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.MetricTotals{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.Impressions,
		&totals.Clicks,
		&totals.Spend,
		&totals.Conversions,
		&totals.Revenue,
		&totals.Rows,
		&totals.MockRows,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar métricas: %w", err)
	}

	return totals, nil
}

func (r *metricRepository) GetDailyTrends(ctx context.Context, filter domain.MetricFilter) ([]domain.TrendPoint, error) {
	query, args, err := buildMetricTrendsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	trends := make([]domain.TrendPoint, 0)
	for rows.Next() {
		var (
			day   time.Time
			cost  decimal.Decimal
			point domain.TrendPoint
		)

		if err := rows.Scan(&day, &point.Impressions, &point.Clicks, &cost, &point.Conversions); err != nil {
			return nil, fmt.Errorf("erro ao escanear tendência diária: %w", err)
		}

		point.Date = day.Format(domain.DateLayout)
		point.Cost = cost.Round(2).InexactFloat64()
		trends = append(trends, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return trends, nil
}

func (r *metricRepository) ListDailyRows(ctx context.Context, filter domain.MetricFilter) ([]domain.MetricRow, error) {
	query, args, err := buildMetricRowsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]domain.MetricRow, 0)
	for rows.Next() {
		var row domain.MetricRow
		err := rows.Scan(
			&row.CampaignID,
			&row.Date,
			&row.Impressions,
			&row.Clicks,
			&row.Spend,
			&row.Conversions,
			&row.Revenue,
			&row.IsMockData,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica diária: %w", err)
		}
		metrics = append(metrics, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
