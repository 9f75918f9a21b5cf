package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:   "marketing-dashboard-api",
		Short: "API do dashboard de marketing multi-tenant",
		RunE:  serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP e os agendadores",
		RunE:  serve,
	}

	migrateCmd = &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Aplica ou reverte as migrações do banco",
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{string(migration.Up), string(migration.Down)},
		RunE:      migrate,
	}

	snapshotsCmd = &cobra.Command{
		Use:   "snapshots",
		Short: "Operações sobre os snapshots mensais",
	}

	snapshotsSyncCmd = &cobra.Command{
		Use:   "sync",
		Short: "Gera os snapshots dos meses fechados imediatamente",
		RunE:  syncSnapshots,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão da API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			fmt.Println(cfg.App.Version)
			return nil
		},
	}
)

func main() {
	configureLogger()

	snapshotsCmd.AddCommand(snapshotsSyncCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, snapshotsCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Erro ao executar comando")
		os.Exit(1)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadConfig carrega a configuração e aplica o nível de log
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	return cfg, nil
}
