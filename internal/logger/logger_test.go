package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Out: &buf})
	require.NoError(t, err)

	componentLog := Component(log, "scheduler")
	componentLog.Debug().Str("task", "autobet:acc-1").Msg("task queued")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "lottery-engine", entry["service"])
	assert.Equal(t, "scheduler", entry["component"])
	assert.Equal(t, "autobet:acc-1", entry["task"])
	assert.Equal(t, "task queued", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		logged  bool
		wantErr bool
	}{
		{name: "default is info", level: "", logged: false},
		{name: "debug", level: "debug", logged: true},
		{name: "warn", level: "warn", logged: false},
		{name: "unknown", level: "chatty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(Options{Level: tt.level, Out: &buf})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			log.Debug().Msg("draw planned")
			assert.Equal(t, tt.logged, buf.Len() > 0)
		})
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Pretty: true, Out: &buf})
	require.NoError(t, err)

	log.Info().Str("draw_kind", "mini").Msg("Draw finished")

	out := buf.String()
	assert.Contains(t, out, "Draw finished")
	assert.Contains(t, out, "draw_kind=")
	assert.NotContains(t, out, `"service"`)
}
