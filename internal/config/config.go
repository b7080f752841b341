package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Meta           Meta           `mapstructure:",squash"`
	Google         Google         `mapstructure:",squash"`
	BalanceSync    BalanceSync    `mapstructure:",squash"`
	AlertCheck     AlertCheck     `mapstructure:",squash"`
	ReportSchedule ReportSchedule `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
	Webhook        Webhook        `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns int           `mapstructure:"database_max_open_conns"`
	MaxIdleTime  time.Duration `mapstructure:"database_max_idle_time"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"-"`
	Version        string        `mapstructure:"meta_version"`
	AppID          string        `mapstructure:"meta_app_id"`
	AppSecret      string        `mapstructure:"meta_app_secret"`
	PageLimit      int           `mapstructure:"meta_page_limit"`
	MaxPages       int           `mapstructure:"meta_max_pages"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
}

// HasAppCredentials indica se a troca por token de longa duração é possível
func (m Meta) HasAppCredentials() bool {
	return m.AppID != "" && m.AppSecret != ""
}

type Google struct {
	AdsBaseURL     string        `mapstructure:"google_ads_base_url"`
	AdsVersion     string        `mapstructure:"google_ads_version"`
	AdsURL         string        `mapstructure:"-"`
	DeveloperToken string        `mapstructure:"google_ads_developer_token"`
	TokenURL       string        `mapstructure:"google_oauth_token_url"`
	MaxPages       int           `mapstructure:"google_ads_max_pages"`
	RequestTimeout time.Duration `mapstructure:"google_ads_request_timeout"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type BalanceSync struct {
	CronSchedule      string `mapstructure:"balance_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"balance_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"balance_sync_enabled"`
}

type AlertCheck struct {
	TokenExpiryDays int `mapstructure:"alert_token_expiry_days"`
}

// TokenExpiryWindow é a antecedência com que o alerta de expiração de token é gerado
func (a AlertCheck) TokenExpiryWindow() time.Duration {
	return time.Duration(a.TokenExpiryDays) * 24 * time.Hour
}

type ReportSchedule struct {
	CronSchedule string `mapstructure:"report_schedule_cron"`
	PeriodDays   int    `mapstructure:"report_schedule_period_days"`
	Enabled      bool   `mapstructure:"report_schedule_enabled"`
}

type Report struct {
	CostPerMessage float64 `mapstructure:"report_cost_per_message"`
}

type Webhook struct {
	Timeout     time.Duration `mapstructure:"webhook_timeout"`
	MaxParallel int           `mapstructure:"webhook_max_parallel"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/balance_monitor?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_TIME", "5m")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_PAGE_LIMIT", 50)
	viper.SetDefault("META_MAX_PAGES", 200)
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v18")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "")
	viper.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_MAX_PAGES", 200)
	viper.SetDefault("GOOGLE_ADS_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Pipeline de saldo: sincronização seguida da verificação de alertas
	viper.SetDefault("BALANCE_SYNC_CRON", "0 */4 * * *")     // A cada 4 horas
	viper.SetDefault("BALANCE_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 contas em paralelo
	viper.SetDefault("BALANCE_SYNC_ENABLED", false)

	viper.SetDefault("ALERT_TOKEN_EXPIRY_DAYS", 7)

	viper.SetDefault("REPORT_SCHEDULE_CRON", "0 8 * * 1") // Segunda-feira às 8h
	viper.SetDefault("REPORT_SCHEDULE_PERIOD_DAYS", 7)
	viper.SetDefault("REPORT_SCHEDULE_ENABLED", false)
	viper.SetDefault("REPORT_COST_PER_MESSAGE", 5.0)

	viper.SetDefault("WEBHOOK_TIMEOUT", "10s")
	viper.SetDefault("WEBHOOK_MAX_PARALLEL", 5)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

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

	config.normalize()

	return config, nil
}

// normalize preenche os campos derivados e corrige valores fora da faixa
func (c *Config) normalize() {
	c.Meta.BaseURL = strings.TrimRight(c.Meta.BaseURL, "/")
	c.Meta.URL = fmt.Sprintf("%s/%s", c.Meta.BaseURL, c.Meta.Version)

	c.Google.AdsBaseURL = strings.TrimRight(c.Google.AdsBaseURL, "/")
	c.Google.AdsURL = fmt.Sprintf("%s/%s", c.Google.AdsBaseURL, c.Google.AdsVersion)

	if c.BalanceSync.MaxConcurrentJobs <= 0 {
		c.BalanceSync.MaxConcurrentJobs = 1
	}

	if c.Webhook.MaxParallel <= 0 {
		c.Webhook.MaxParallel = 1
	}

	if c.Report.CostPerMessage <= 0 {
		c.Report.CostPerMessage = 5.0
	}

	if c.AlertCheck.TokenExpiryDays <= 0 {
		c.AlertCheck.TokenExpiryDays = 7
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

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
