package logger

import (
	"olympus_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want zap.AtomicLevel
	}{
		{name: "debug mode", cfg: config.Config{Server: config.ServerConfig{Mode: "debug"}}, want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{name: "release mode", cfg: config.Config{Server: config.ServerConfig{Mode: "release"}}, want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{name: "explicit level", cfg: config.Config{Server: config.ServerConfig{Mode: "debug"}, Log: config.LogConfig{Level: "warn"}}, want: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{name: "bad level falls back", cfg: config.Config{Server: config.ServerConfig{Mode: "release"}, Log: config.LogConfig{Level: "loud"}}, want: zap.NewAtomicLevelAt(zap.InfoLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want.Level(), LevelFor(&tt.cfg))
		})
	}
}
