package reporting

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Reporter interface {
	GetMonthlyReport(ctx context.Context, tenantID, period string) (*domain.MonthlyReport, error)
	GetAvailablePeriods(ctx context.Context, tenantID string) (*domain.AvailablePeriods, error)
}

type Service struct {
	snapshotRepository repository.MonthlySnapshotRepository
	tenantRepository   repository.TenantRepository
}

func NewService(snapshotRepository repository.MonthlySnapshotRepository, tenantRepository repository.TenantRepository) Reporter {
	return &Service{
		snapshotRepository: snapshotRepository,
		tenantRepository:   tenantRepository,
	}
}

// GetMonthlyReport devolve o snapshot consolidado do mês (mm-yyyy)
func (s *Service) GetMonthlyReport(ctx context.Context, tenantID, period string) (*domain.MonthlyReport, error) {
	if _, err := domain.ParseMonthPeriod(period); err != nil {
		return nil, err
	}

	var (
		snapshot *domain.MonthlySnapshot
		tenant   *domain.Tenant
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := s.snapshotRepository.GetByTenantAndPeriod(gctx, tenantID, period)
		if err != nil {
			return domain.Upstream("snapshot mensal", err)
		}
		snapshot = found
		return nil
	})

	// O nome do tenant é apenas informativo
	g.Go(func() error {
		found, err := s.tenantRepository.GetByID(gctx, tenantID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Warn("Não foi possível buscar o nome do tenant para o relatório")
			return nil
		}
		tenant = found
		return nil
	})

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"period":    period,
			"error":     err.Error(),
		}).Error("Erro ao buscar relatório mensal")
		return nil, err
	}

	if snapshot == nil {
		return nil, domain.ErrSnapshotNotFound
	}

	report := &domain.MonthlyReport{
		TenantID:  tenantID,
		Period:    snapshot.Period,
		Summary:   snapshot.Summary,
		Growth:    snapshot.Growth,
		IsDemo:    snapshot.IsDemo,
		UpdatedAt: snapshot.UpdatedAt,
	}
	if tenant != nil {
		report.TenantName = tenant.Name
	}

	return report, nil
}

func (s *Service) GetAvailablePeriods(ctx context.Context, tenantID string) (*domain.AvailablePeriods, error) {
	periods, err := s.snapshotRepository.GetAllPeriods(ctx, tenantID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro ao listar períodos disponíveis")
		return nil, domain.Upstream("períodos disponíveis", err)
	}

	return domain.NewAvailablePeriods(periods), nil
}

// PeriodFromMonthYear monta o período mm-yyyy a partir dos parâmetros month e year
func PeriodFromMonthYear(month, year string) (string, error) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return "", domain.ErrInvalidPeriod
	}

	y, err := strconv.Atoi(year)
	if err != nil || y < 2000 || y > 9999 {
		return "", domain.ErrInvalidPeriod
	}

	return fmt.Sprintf("%02d-%04d", m, y), nil
}
