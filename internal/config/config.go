package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
	Chart     Chart     `mapstructure:",squash"`
	Cors      Cors      `mapstructure:",squash"`
	Session   Session   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Dashboard struct {
	// DefaultYear 0 significa o ano mais recente disponível no dataset
	DefaultYear      int    `mapstructure:"default_year"`
	DefaultTimeFrame string `mapstructure:"default_timeframe"`
	FillEmptyWeeks   bool   `mapstructure:"fill_empty_weeks"`
}

type Chart struct {
	SalesColor   string `mapstructure:"sales_chart_color"`
	ProfitColor  string `mapstructure:"profit_chart_color"`
	NumberLocale string `mapstructure:"number_locale"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Session controla a limpeza dos dashboards abertos e esquecidos em memória
type Session struct {
	CleanupEnabled bool          `mapstructure:"session_cleanup_enabled"`
	CleanupCron    string        `mapstructure:"session_cleanup_cron"`
	IdleTTL        time.Duration `mapstructure:"session_idle_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8000")

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DEFAULT_YEAR", 0)
	viper.SetDefault("DEFAULT_TIMEFRAME", string(domain.TimeFrameMonthly))
	viper.SetDefault("FILL_EMPTY_WEEKS", false)

	viper.SetDefault("SALES_CHART_COLOR", "#77CDFF")
	viper.SetDefault("PROFIT_CHART_COLOR", "#FFB677")
	viper.SetDefault("NUMBER_LOCALE", "en-US")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)
	viper.SetDefault("SESSION_CLEANUP_CRON", "*/10 * * * *")
	viper.SetDefault("SESSION_IDLE_TTL", "2h")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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
		return nil, errors.Wrap(err, "config: erro ao decodificar configuração")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate normaliza o time frame padrão e rejeita valores que o dashboard não aceita
func (c *Config) Validate() error {
	frame, err := domain.ParseTimeFrame(c.Dashboard.DefaultTimeFrame)
	if err != nil {
		return errors.Wrap(err, "config: DEFAULT_TIMEFRAME")
	}
	c.Dashboard.DefaultTimeFrame = string(frame)

	if c.Dashboard.DefaultYear < 0 {
		return errors.Errorf("config: DEFAULT_YEAR inválido: %d", c.Dashboard.DefaultYear)
	}

	if c.Session.CleanupEnabled && c.Session.IdleTTL <= 0 {
		return errors.Errorf("config: SESSION_IDLE_TTL inválido: %s", c.Session.IdleTTL)
	}

	if c.Chart.NumberLocale == "" {
		c.Chart.NumberLocale = "en-US"
	}

	return nil
}

// DefaultTimeFrame retorna o time frame padrão já validado
func (c *Config) DefaultTimeFrame() domain.TimeFrame {
	return domain.TimeFrame(c.Dashboard.DefaultTimeFrame)
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
