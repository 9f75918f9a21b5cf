package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	seoSearchIntentTable = "seo_search_intent si"
)

type SeoIntentRepository interface {
	GetIntentSummary(ctx context.Context, tenantID string, dateRange domain.DateRange) ([]domain.KeywordIntent, error)
}

type seoIntentRepository struct {
	conn *postgres.Connection
}

func NewSeoIntentRepository(conn *postgres.Connection) SeoIntentRepository {
	return &seoIntentRepository{
		conn: conn,
	}
}

func buildIntentSummaryQuery(tenantID string, dateRange domain.DateRange) squirrel.SelectBuilder {
	builder := squirrel.
		Select("si.type", "COALESCE(SUM(si.keywords), 0)", "COALESCE(SUM(si.traffic), 0)").
		From(seoSearchIntentTable).
		Where(squirrel.Eq{"si.tenant_id": tenantID})

	return withDateRange(builder, "si.date", dateRange).
		GroupBy("si.type").
		OrderBy("si.type ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *seoIntentRepository) GetIntentSummary(ctx context.Context, tenantID string, dateRange domain.DateRange) ([]domain.KeywordIntent, error) {
	query, args, err := buildIntentSummaryQuery(tenantID, dateRange).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	intents := make([]domain.KeywordIntent, 0)
	for rows.Next() {
		var intent domain.KeywordIntent
		if err := rows.Scan(&intent.Type, &intent.Keywords, &intent.Traffic); err != nil {
			return nil, fmt.Errorf("erro ao escanear intenção de busca: %w", err)
		}
		intents = append(intents, intent)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return intents, nil
}
