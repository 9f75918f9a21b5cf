package campaign

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

type CampaignService interface {
	ListCampaigns(ctx context.Context, filters domain.CampaignFilters) (*domain.CampaignPage, error)
	GetCampaign(ctx context.Context, tenantID, campaignID string, window domain.DateRange, policy domain.DataVisibilityPolicy) (*domain.NormalizedCampaign, error)
	GetCampaignMetrics(ctx context.Context, tenantID, campaignID string, window domain.DateRange, policy domain.DataVisibilityPolicy) (*domain.CampaignMetrics, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	metricRepository   repository.MetricRepository
}

func NewService(
	campaignRepository repository.CampaignRepository,
	metricRepository repository.MetricRepository,
) CampaignService {
	return &Service{
		campaignRepository: campaignRepository,
		metricRepository:   metricRepository,
	}
}

// ListCampaigns pagina as campanhas do tenant; com janela informada as métricas ficam restritas a ela
func (s *Service) ListCampaigns(ctx context.Context, filters domain.CampaignFilters) (*domain.CampaignPage, error) {
	filters = filters.Normalize()

	campaigns, total, err := s.campaignRepository.List(ctx, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": filters.TenantID,
			"error":     err.Error(),
		}).Error("Erro ao listar campanhas")
		return nil, domain.Upstream("listar campanhas", err)
	}

	page := &domain.CampaignPage{
		Data: make([]domain.NormalizedCampaign, 0, len(campaigns)),
		Meta: domain.CampaignPageMeta{
			Page:       filters.Page,
			Limit:      filters.Limit,
			Total:      total,
			TotalPages: totalPages(total, filters.Limit),
		},
	}

	if !filters.Window.IsZero() {
		page.Meta.StartDate = filters.Window.From()
		page.Meta.EndDate = filters.Window.To()
	}

	if len(campaigns) == 0 {
		return page, nil
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	rows, err := s.metricRepository.ListDailyRows(ctx, domain.MetricFilter{
		TenantID:    filters.TenantID,
		Range:       filters.Window,
		Visibility:  filters.Visibility,
		CampaignIDs: ids,
	})
	if err != nil {
		return nil, domain.Upstream("métricas das campanhas", err)
	}

	grouped := GroupByCampaign(rows)
	for _, c := range campaigns {
		page.Data = append(page.Data, NormalizeCampaign(c, grouped[c.ID]))
	}

	return page, nil
}

func (s *Service) GetCampaign(ctx context.Context, tenantID, campaignID string, window domain.DateRange, policy domain.DataVisibilityPolicy) (*domain.NormalizedCampaign, error) {
	c, rows, err := s.loadCampaign(ctx, tenantID, campaignID, window, policy)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeCampaign(c, rows)
	return &normalized, nil
}

func (s *Service) GetCampaignMetrics(ctx context.Context, tenantID, campaignID string, window domain.DateRange, policy domain.DataVisibilityPolicy) (*domain.CampaignMetrics, error) {
	c, rows, err := s.loadCampaign(ctx, tenantID, campaignID, window, policy)
	if err != nil {
		return nil, err
	}

	result := &domain.CampaignMetrics{
		Campaign: domain.CampaignRef{
			ID:       c.ID,
			Name:     c.Name,
			Platform: c.Platform,
		},
		Metrics: make([]domain.CampaignDailyMetric, 0, len(rows)),
	}

	for _, row := range rows {
		result.Metrics = append(result.Metrics, DailyMetric(row))
	}

	return result, nil
}

func (s *Service) loadCampaign(ctx context.Context, tenantID, campaignID string, window domain.DateRange, policy domain.DataVisibilityPolicy) (*domain.Campaign, []domain.MetricRow, error) {
	c, err := s.campaignRepository.GetByID(ctx, tenantID, campaignID, policy)
	if err != nil {
		return nil, nil, domain.Upstream("buscar campanha", err)
	}
	if c == nil {
		return nil, nil, domain.ErrCampaignNotFound
	}

	rows, err := s.metricRepository.ListDailyRows(ctx, domain.MetricFilter{
		TenantID:    tenantID,
		Range:       window,
		Visibility:  policy,
		CampaignIDs: []string{c.ID},
	})
	if err != nil {
		return nil, nil, domain.Upstream("métricas da campanha", err)
	}

	return c, rows, nil
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 || total <= 0 {
		return 1
	}
	return (total + int64(limit) - 1) / int64(limit)
}
