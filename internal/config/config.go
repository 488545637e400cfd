package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	CascadeReconcile CascadeReconcile `mapstructure:",squash"`
	Rollup           Rollup           `mapstructure:",squash"`
	Metrics          Metrics          `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	AutoMigrate  bool   `mapstructure:"database_auto_migrate"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// CascadeReconcile controla o job que refaz a cascata das semanas alteradas recentemente
type CascadeReconcile struct {
	CronSchedule      string `mapstructure:"cascade_reconcile_cron"`
	LookbackDays      int    `mapstructure:"cascade_reconcile_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"cascade_reconcile_max_concurrent"`
	Enabled           bool   `mapstructure:"cascade_reconcile_enabled"`
}

// Rollup limita quantos membros de um grupo são lidos ao mesmo tempo
type Rollup struct {
	MaxConcurrentMembers int `mapstructure:"rollup_max_concurrent"`
}

type Metrics struct {
	Enabled bool `mapstructure:"metrics_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/plan_tracker?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("CASCADE_RECONCILE_CRON", "30 2 * * *")  // Todos os dias às 2h30 da manhã
	viper.SetDefault("CASCADE_RECONCILE_LOOKBACK_DAYS", 7)    // Semanas com registros diários alterados nos últimos 7 dias
	viper.SetDefault("CASCADE_RECONCILE_MAX_CONCURRENT", 4)
	viper.SetDefault("CASCADE_RECONCILE_ENABLED", false)

	viper.SetDefault("ROLLUP_MAX_CONCURRENT", 4)

	viper.SetDefault("METRICS_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	if config.CascadeReconcile.LookbackDays <= 0 {
		config.CascadeReconcile.LookbackDays = 7
	}
	if config.CascadeReconcile.MaxConcurrentJobs <= 0 {
		config.CascadeReconcile.MaxConcurrentJobs = 1
	}
	if config.Rollup.MaxConcurrentMembers <= 0 {
		config.Rollup.MaxConcurrentMembers = 1
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
