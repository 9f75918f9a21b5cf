package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	campaignsTable   = "campaigns c"
	campaignsColumns = "c.id, c.tenant_id, c.name, c.platform, c.status, c.budget, c.start_date, c.end_date, c.external_id, c.is_mock_data, c.created_at, c.updated_at"
)

type CampaignRepository interface {
	List(ctx context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, int64, error)
	GetByID(ctx context.Context, tenantID, campaignID string, policy domain.DataVisibilityPolicy) (*domain.Campaign, error)
	ListRecent(ctx context.Context, tenantID string, limit int, policy domain.DataVisibilityPolicy) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func campaignFilterQuery(builder squirrel.SelectBuilder, filters domain.CampaignFilters) squirrel.SelectBuilder {
	builder = builder.
		From(campaignsTable).
		Where(squirrel.Eq{"c.tenant_id": filters.TenantID})

	if filters.Status != "" {
		builder = builder.Where(squirrel.Eq{"c.status": filters.Status})
	}

	if filters.Platform != "" {
		builder = builder.Where(squirrel.Eq{"c.platform": filters.Platform})
	}

	if filters.Search != "" {
		builder = builder.Where(squirrel.ILike{"c.name": containsPattern(filters.Search)})
	}

	return withVisibility(builder, "c.is_mock_data", filters.Visibility).PlaceholderFormat(squirrel.Dollar)
}

func buildCampaignListQuery(filters domain.CampaignFilters) squirrel.SelectBuilder {
	return campaignFilterQuery(squirrel.Select(campaignsColumns), filters).
		OrderBy("c.created_at DESC", "c.id ASC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset()))
}

func buildCampaignCountQuery(filters domain.CampaignFilters) squirrel.SelectBuilder {
	return campaignFilterQuery(squirrel.Select("COUNT(*)"), filters)
}

func buildRecentCampaignsQuery(tenantID string, limit int, policy domain.DataVisibilityPolicy) squirrel.SelectBuilder {
	builder := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.tenant_id": tenantID})

	return withVisibility(builder, "c.is_mock_data", policy).
		OrderBy("c.updated_at DESC", "c.id ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *campaignRepository) List(ctx context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, int64, error) {
	filters = filters.Normalize()

	countQuery, countArgs, err := buildCampaignCountQuery(filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar campanhas: %w", err)
	}

	query, args, err := buildCampaignListQuery(filters).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaigns, err := r.queryCampaigns(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, tenantID, campaignID string, policy domain.DataVisibilityPolicy) (*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignsColumns).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": campaignID, "c.tenant_id": tenantID})

	query, args, err := withVisibility(builder, "c.is_mock_data", policy).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListRecent(ctx context.Context, tenantID string, limit int, policy domain.DataVisibilityPolicy) ([]*domain.Campaign, error) {
	query, args, err := buildRecentCampaignsQuery(tenantID, limit, policy).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCampaigns(ctx, query, args...)
}

func (r *campaignRepository) queryCampaigns(ctx context.Context, query string, args ...interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}
	var externalID sql.NullString
	var startDate, endDate sql.NullTime

	err := row.Scan(
		&campaign.ID,
		&campaign.TenantID,
		&campaign.Name,
		&campaign.Platform,
		&campaign.Status,
		&campaign.Budget,
		&startDate,
		&endDate,
		&externalID,
		&campaign.IsMockData,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if externalID.Valid {
		campaign.ExternalID = &externalID.String
	}
	if startDate.Valid {
		campaign.StartDate = &startDate.Time
	}
	if endDate.Valid {
		campaign.EndDate = &endDate.Time
	}

	return campaign, nil
}
