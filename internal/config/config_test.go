package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 0, cfg.Dashboard.DefaultYear)
	assert.Equal(t, domain.TimeFrameMonthly, cfg.DefaultTimeFrame())
	assert.False(t, cfg.Dashboard.FillEmptyWeeks)
	assert.Equal(t, "#77CDFF", cfg.Chart.SalesColor)
	assert.Equal(t, "#FFB677", cfg.Chart.ProfitColor)
	assert.Equal(t, "en-US", cfg.Chart.NumberLocale)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:8000"}, cfg.Cors.AllowedOrigins)
	assert.True(t, cfg.Session.CleanupEnabled)
	assert.Equal(t, 2*time.Hour, cfg.Session.IdleTTL)
}

func TestNewConfig_Environment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_YEAR", "2023")
	t.Setenv("DEFAULT_TIMEFRAME", "quarterly")
	t.Setenv("FILL_EMPTY_WEEKS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SESSION_IDLE_TTL", "30m")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 2023, cfg.Dashboard.DefaultYear)
	assert.Equal(t, domain.TimeFrameQuarterly, cfg.DefaultTimeFrame())
	assert.True(t, cfg.Dashboard.FillEmptyWeeks)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		expectErr bool
	}{
		{
			name:   "Time frame normalizado",
			config: Config{Dashboard: Dashboard{DefaultTimeFrame: "WEEKLY"}},
		},
		{
			name:      "Time frame desconhecido",
			config:    Config{Dashboard: Dashboard{DefaultTimeFrame: "Daily"}},
			expectErr: true,
		},
		{
			name:      "Ano negativo",
			config:    Config{Dashboard: Dashboard{DefaultTimeFrame: "Monthly", DefaultYear: -1}},
			expectErr: true,
		},
		{
			name: "Limpeza habilitada sem TTL",
			config: Config{
				Dashboard: Dashboard{DefaultTimeFrame: "Monthly"},
				Session:   Session{CleanupEnabled: true},
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "en-US", tt.config.Chart.NumberLocale)
			assert.Equal(t, domain.TimeFrameWeekly, tt.config.DefaultTimeFrame())
		})
	}
}
