package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Dashboard           Dashboard           `mapstructure:",squash"`
	Seo                 Seo                 `mapstructure:",squash"`
	Redis               Redis               `mapstructure:",squash"`
	MonthlySnapshotSync MonthlySnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"app_version"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	Automigrate bool   `mapstructure:"database_automigrate"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	Secret        string        `mapstructure:"auth_secret"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type Dashboard struct {
	// HideMockData é lida uma única vez e convertida em política de visibilidade por requisição
	HideMockData         bool `mapstructure:"hide_mock_data"`
	RecentCampaignsLimit int  `mapstructure:"recent_campaigns_limit"`
}

type Seo struct {
	GrowthFallbackEnabled bool `mapstructure:"growth_fallback_enabled"`
	SearchConsoleEnabled  bool `mapstructure:"seo_search_console_enabled"`
	HistoryMaxDays        int  `mapstructure:"seo_history_max_days"`
}

type Redis struct {
	URL      string        `mapstructure:"redis_url"`
	CacheTTL time.Duration `mapstructure:"redis_cache_ttl"`
}

type MonthlySnapshotSync struct {
	CronSchedule      string `mapstructure:"monthly_snapshot_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"monthly_snapshot_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"monthly_snapshot_sync_enabled"`
	MonthLookBack     int    `mapstructure:"monthly_snapshot_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketing_dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTOMIGRATE", false)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("HIDE_MOCK_DATA", false)
	viper.SetDefault("RECENT_CAMPAIGNS_LIMIT", 5)

	viper.SetDefault("GROWTH_FALLBACK_ENABLED", false) // Tendência determinística sem histórico, apenas para demo
	viper.SetDefault("SEO_SEARCH_CONSOLE_ENABLED", true)
	viper.SetDefault("SEO_HISTORY_MAX_DAYS", 365)

	viper.SetDefault("REDIS_URL", "") // Cache desabilitado quando vazio
	viper.SetDefault("REDIS_CACHE_TTL", "60s")

	// Defaults para os snapshots mensais
	viper.SetDefault("MONTHLY_SNAPSHOT_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("MONTHLY_SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_SNAPSHOT_SYNC_MONTH_LOOKBACK", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_VERSION", "dev")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.Dashboard.RecentCampaignsLimit <= 0 {
		config.Dashboard.RecentCampaignsLimit = 5
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
