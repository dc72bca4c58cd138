package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "json stderr", cfg: Config{Level: "info", Format: "json", Output: "stderr"}},
		{name: "console default output", cfg: Config{Level: "debug", Format: "console"}},
		{name: "bad level falls back", cfg: Config{Level: "loud", Format: "json", Output: "stdout"}},
		{name: "unknown output", cfg: Config{Level: "info", Format: "json", Output: "syslog"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestWith_AddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core)).With(String("session_id", "abc"))

	l.Info("Ride started", String("ride_id", "ride1"), Float64("bill", 1.5), Err(errors.New("boom")))
	l.Debug("dropped")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "abc", fields["session_id"])
	assert.Equal(t, "ride1", fields["ride_id"])
	assert.Equal(t, "boom", fields["error"])
}
