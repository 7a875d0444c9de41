package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Empty(t, cfg.Pricing.CatalogFile)
		assert.Equal(t, 10, cfg.Pricing.DefaultGroupSize)
		assert.Equal(t, 25, cfg.Pricing.DefaultMarginPercent)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "tour_service", cfg.Database.DatabaseName)
		assert.Equal(t, 30*24*time.Hour, cfg.Database.LogsTTL)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.False(t, cfg.Logging.Pretty)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("REQUEST_TIMEOUT", "5s")
		_ = os.Setenv("CATALOG_FILE", "/etc/tour/catalog.yaml")
		_ = os.Setenv("DEFAULT_GROUP_SIZE", "12")
		_ = os.Setenv("DEFAULT_MARGIN_PERCENT", "30")
		_ = os.Setenv("MONGODB_ENABLED", "true")
		_ = os.Setenv("MONGODB_URI", "mongodb://mongo:27017")
		_ = os.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "3")
		_ = os.Setenv("LOG_LEVEL", "DEBUG")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "/etc/tour/catalog.yaml", cfg.Pricing.CatalogFile)
		assert.Equal(t, 12, cfg.Pricing.DefaultGroupSize)
		assert.Equal(t, 30, cfg.Pricing.DefaultMarginPercent)
		assert.True(t, cfg.Database.Enabled)
		assert.Equal(t, "mongodb://mongo:27017", cfg.Database.URI)
		assert.Equal(t, 3, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.True(t, cfg.Logging.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("DEFAULT_MARGIN_PERCENT", "12.5")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 25, cfg.Pricing.DefaultMarginPercent)
	})

	t.Run("allows negative default margin", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("DEFAULT_MARGIN_PERCENT", "-10")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, -10, cfg.Pricing.DefaultMarginPercent)
	})
}

func TestParseCORSOrigins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "defaults when empty",
			input: "",
			want:  []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		{
			name:  "appends trimmed origins",
			input: " https://tours.example.com , ,https://admin.example.com",
			want: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"https://tours.example.com",
				"https://admin.example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCORSOrigins(tt.input))
		})
	}
}

func TestDatabaseConfig_LogsTTLDays(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want int
	}{
		{"thirty days", 30 * 24 * time.Hour, 30},
		{"partial day rounds down", 36 * time.Hour, 1},
		{"below one day", time.Hour, 1},
		{"zero", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatabaseConfig{LogsTTL: tt.ttl}.LogsTTLDays())
		})
	}
}
