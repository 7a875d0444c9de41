//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/tour-service/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
		want zerolog.Level
	}{
		{"empty level defaults to info", config.LoggingConfig{}, zerolog.InfoLevel},
		{"debug", config.LoggingConfig{Level: "debug"}, zerolog.DebugLevel},
		{"pretty warn", config.LoggingConfig{Level: "warn", Pretty: true}, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitializeLogger(tt.cfg)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}
