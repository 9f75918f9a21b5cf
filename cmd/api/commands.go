package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/api"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/campaign"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/seo"
)

// services agrupa os casos de uso montados a partir da configuração
type services struct {
	authenticator *authenticating.Service
	overviewer    *dashboard.Service
	campaigns     campaign.CampaignService
	seo           *seo.Service
	insighter     *insighting.Service
	reporter      reporting.Reporter
	snapshotSync  *scheduler.MonthlySnapshotSyncService
}

func buildServices(ctx context.Context, cfg *config.Config, pgConn *postgres.Connection) *services {
	tenantRepo := repository.NewTenantRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	webAnalyticsRepo := repository.NewWebAnalyticsRepository(pgConn)
	searchConsoleRepo := repository.NewSearchConsoleRepository(pgConn)
	seoIntentRepo := repository.NewSeoIntentRepository(pgConn)
	snapshotRepo := repository.NewMonthlySnapshotRepository(pgConn)

	overviewer := dashboard.NewService(cfg, metricRepo, campaignRepo)
	if cfg.Redis.URL != "" {
		client, err := cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			// sem cache o overview continua sendo servido direto do banco
			logrus.WithError(err).Warn("Cache do overview desabilitado")
		} else {
			overviewer = overviewer.WithCache(cache.NewRedisCache(client), cfg.Redis.CacheTTL)
			logrus.WithField("ttl", cfg.Redis.CacheTTL).Info("Cache do overview habilitado")
		}
	}

	return &services{
		authenticator: authenticating.NewService(userRepo, cfg),
		overviewer:    overviewer,
		campaigns:     campaign.NewService(campaignRepo, metricRepo),
		seo:           seo.NewService(cfg, webAnalyticsRepo, searchConsoleRepo, seoIntentRepo, metricRepo),
		insighter:     insighting.NewService(overviewer),
		reporter:      reporting.NewService(snapshotRepo, tenantRepo),
		snapshotSync:  scheduler.NewMonthlySnapshotSyncService(tenantRepo, snapshotRepo, overviewer, cfg),
	}
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	pgConn, err := pgconn(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pgConn.Close()

	if cfg.Database.Automigrate {
		if err := migration.Run(pgConn.DB, migration.Up); err != nil {
			return err
		}
	}

	svc := buildServices(ctx, cfg, pgConn)

	if err := svc.snapshotSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots mensais")
	} else {
		logrus.Info("Agendador de snapshots mensais iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		svc.authenticator,
		svc.overviewer,
		svc.campaigns,
		svc.seo,
		svc.insighter,
		svc.reporter,
		svc.snapshotSync,
	)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

func migrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pgConn, err := pgconn(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}
	defer pgConn.Close()

	return migration.Run(pgConn.DB, migration.Direction(args[0]))
}

func syncSnapshots(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	pgConn, err := pgconn(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pgConn.Close()

	return buildServices(ctx, cfg, pgConn).snapshotSync.SyncNow(ctx)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
