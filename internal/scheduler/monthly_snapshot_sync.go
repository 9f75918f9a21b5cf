package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

var ErrSyncRunning = errors.New("sincronização de snapshots já em andamento")

// MonthlySnapshotSyncConfig representa a configuração do agendador de snapshots mensais
type MonthlySnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// MonthlySnapshotSyncService consolida o overview de cada tenant nos meses fechados
type MonthlySnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlySnapshotSyncConfig
	tenantRepo          repository.TenantRepository
	snapshotRepo        repository.MonthlySnapshotRepository
	overviewer          dashboard.Overviewer
	policy              domain.DataVisibilityPolicy
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSaved       int
	lastSyncFailed      int
}

func NewMonthlySnapshotSyncService(
	tenantRepo repository.TenantRepository,
	snapshotRepo repository.MonthlySnapshotRepository,
	overviewer dashboard.Overviewer,
	appConfig *config.Config,
) *MonthlySnapshotSyncService {
	syncConfig := MonthlySnapshotSyncConfig{
		CronSchedule:      appConfig.MonthlySnapshotSync.CronSchedule,
		MaxConcurrentJobs: appConfig.MonthlySnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.MonthlySnapshotSync.Enabled,
		MonthLookBack:     appConfig.MonthlySnapshotSync.MonthLookBack,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}
	if syncConfig.MonthLookBack <= 0 {
		syncConfig.MonthLookBack = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"month_lookback":      syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de snapshots mensais carregada")

	return &MonthlySnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       syncConfig,
		tenantRepo:   tenantRepo,
		snapshotRepo: snapshotRepo,
		overviewer:   overviewer,
		policy:       domain.VisibilityFromHideFlag(appConfig.Dashboard.HideMockData),
		now:          time.Now,
	}
}

// WithClock substitui o relógio usado para escolher os meses fechados
func (s *MonthlySnapshotSyncService) WithClock(now func() time.Time) *MonthlySnapshotSyncService {
	s.now = now
	return s
}

// Start inicia o agendador
func (s *MonthlySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots mensais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots mensais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncNow(ctx); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização agendada de snapshots mensais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots mensais: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncNow executa a sincronização e aguarda o término
func (s *MonthlySnapshotSyncService) SyncNow(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		metrics.SnapshotSyncRuns.WithLabelValues("skipped").Inc()
		return ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	saved, failed, err := s.syncMonthlySnapshots(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncSaved = saved
	s.lastSyncFailed = failed
	if err == nil {
		s.lastSyncCompletedAt = s.now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		metrics.SnapshotSyncRuns.WithLabelValues("error").Inc()
		return err
	}

	metrics.SnapshotSyncRuns.WithLabelValues("success").Inc()
	return nil
}

func (s *MonthlySnapshotSyncService) syncMonthlySnapshots(ctx context.Context) (int, int, error) {
	startTime := time.Now()

	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao buscar tenants para os snapshots mensais: %w", err)
	}

	if len(tenants) == 0 {
		logrus.Info("Nenhum tenant encontrado para os snapshots mensais")
		return 0, 0, nil
	}

	now := s.now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var saved, failed int
	for i := 1; i <= s.config.MonthLookBack; i++ {
		qr := domain.MonthQueryRange(firstOfMonth.AddDate(0, -i, 0))
		period := domain.MonthPeriod(qr.Current.Start)

		logrus.WithFields(logrus.Fields{
			"period":     period,
			"start_date": qr.Current.From(),
			"end_date":   qr.Current.To(),
		}).Info("Período para os snapshots mensais")

		snapshots, monthFailures := s.buildSnapshots(ctx, tenants, qr, period)
		failed += monthFailures

		if len(snapshots) == 0 {
			continue
		}

		if err := s.snapshotRepo.SaveBatch(ctx, snapshots); err != nil {
			return saved, failed, fmt.Errorf("erro ao salvar snapshots de %s: %w", period, err)
		}
		saved += len(snapshots)
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"tenants":  len(tenants),
		"saved":    saved,
		"failed":   failed,
	}).Info("Sincronização de snapshots mensais concluída")

	return saved, failed, nil
}

// buildSnapshots calcula o overview de cada tenant com no máximo MaxConcurrentJobs em paralelo.
// Falhas de um tenant não interrompem os demais.
func (s *MonthlySnapshotSyncService) buildSnapshots(ctx context.Context, tenants []*domain.Tenant, qr domain.QueryRange, period string) ([]*domain.MonthlySnapshot, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		snapshots = make([]*domain.MonthlySnapshot, 0, len(tenants))
		failed    int
	)

	for _, tenant := range tenants {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(t *domain.Tenant) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			snapshot, err := s.buildSnapshot(ctx, t.ID, qr, period)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				failed++
				logrus.WithError(err).WithFields(logrus.Fields{
					"tenant_id": t.ID,
					"period":    period,
				}).Error("Erro ao calcular snapshot mensal")
				return
			}
			snapshots = append(snapshots, snapshot)
		}(tenant)
	}

	wg.Wait()

	return snapshots, failed
}

func (s *MonthlySnapshotSyncService) buildSnapshot(ctx context.Context, tenantID string, qr domain.QueryRange, period string) (*domain.MonthlySnapshot, error) {
	overview, err := s.overviewer.GetOverview(ctx, tenantID, qr, s.policy)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	return &domain.MonthlySnapshot{
		ID:       id,
		TenantID: tenantID,
		Period:   period,
		Summary:  overview.Summary,
		Growth:   overview.Growth,
		IsDemo:   overview.IsDemo,
	}, nil
}

// TriggerManualSync inicia a sincronização em segundo plano
func (s *MonthlySnapshotSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return ErrSyncRunning
	}

	logrus.Info("Iniciando sincronização manual de snapshots mensais")
	go func() {
		if err := s.SyncNow(context.Background()); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização manual de snapshots mensais")
		}
	}()

	return nil
}

// GetStatus retorna o status atual da sincronização
func (s *MonthlySnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_saved":        s.lastSyncSaved,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
