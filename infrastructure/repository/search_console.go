package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	searchConsoleTable = "search_console_performance s"
)

// Colunas permitidas no agrupamento; a dimensão nunca é concatenada direto na query
var searchConsoleDimensionColumns = map[domain.SearchConsoleDimension]string{
	domain.DimensionQuery:   "s.query",
	domain.DimensionPage:    "s.page",
	domain.DimensionCountry: "s.country",
	domain.DimensionDevice:  "s.device",
}

type SearchConsoleRepository interface {
	GetTotals(ctx context.Context, filter domain.SearchConsoleFilter) (*domain.SearchConsoleTotals, error)
	GetBreakdown(ctx context.Context, filter domain.SearchConsoleFilter, dimension domain.SearchConsoleDimension, limit int) ([]domain.BreakdownItem, error)
}

type searchConsoleRepository struct {
	conn *postgres.Connection
}

func NewSearchConsoleRepository(conn *postgres.Connection) SearchConsoleRepository {
	return &searchConsoleRepository{
		conn: conn,
	}
}

func searchConsoleBaseQuery(builder squirrel.SelectBuilder, filter domain.SearchConsoleFilter) squirrel.SelectBuilder {
	builder = builder.
		From(searchConsoleTable).
		Where(squirrel.Eq{"s.tenant_id": filter.TenantID})

	if filter.SiteURL != "" {
		builder = builder.Where(squirrel.Eq{"s.site_url": filter.SiteURL})
	}

	builder = withDateRange(builder, "s.date", filter.Range)
	return withVisibility(builder, "s.is_mock_data", filter.Visibility).PlaceholderFormat(squirrel.Dollar)
}

func buildSearchConsoleTotalsQuery(filter domain.SearchConsoleFilter) squirrel.SelectBuilder {
	return searchConsoleBaseQuery(squirrel.Select(
		"COALESCE(SUM(s.clicks), 0)",
		"COALESCE(SUM(s.impressions), 0)",
		"COALESCE(AVG(s.position), 0)",
		"COUNT(*)",
	), filter)
}

func buildSearchConsoleBreakdownQuery(filter domain.SearchConsoleFilter, dimension domain.SearchConsoleDimension, limit int) (squirrel.SelectBuilder, error) {
	column, ok := searchConsoleDimensionColumns[dimension]
	if !ok {
		return squirrel.SelectBuilder{}, fmt.Errorf("dimensão inválida: %s", dimension)
	}

	return searchConsoleBaseQuery(squirrel.Select(
		column+" AS dimension_key",
		"COALESCE(SUM(s.clicks), 0) AS clicks",
		"COALESCE(SUM(s.impressions), 0) AS impressions",
		"COALESCE(AVG(s.position), 0) AS position",
	), filter).
		Where(squirrel.NotEq{column: ""}).
		GroupBy(column).
		OrderBy("clicks DESC", "impressions DESC", "dimension_key ASC").
		Limit(uint64(limit)), nil
}

func (r *searchConsoleRepository) GetTotals(ctx context.Context, filter domain.SearchConsoleFilter) (*domain.SearchConsoleTotals, error) {
	query, args, err := buildSearchConsoleTotalsQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.SearchConsoleTotals{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&totals.Clicks,
		&totals.Impressions,
		&totals.AvgPosition,
		&totals.Rows,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar dados do search console: %w", err)
	}

	return totals, nil
}

func (r *searchConsoleRepository) GetBreakdown(ctx context.Context, filter domain.SearchConsoleFilter, dimension domain.SearchConsoleDimension, limit int) ([]domain.BreakdownItem, error) {
	builder, err := buildSearchConsoleBreakdownQuery(filter, dimension, limit)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.BreakdownItem, 0)
	for rows.Next() {
		var item domain.BreakdownItem
		if err := rows.Scan(&item.Key, &item.Clicks, &item.Impressions, &item.Position); err != nil {
			return nil, fmt.Errorf("erro ao escanear dimensão do search console: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
