package logging

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"", false, true, true},
		{"WARN", false, false, true},
		{"error", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.level)
			require.NoError(t, err)

			level.Debug(logger).Log("msg", "d")
			level.Info(logger).Log("msg", "i")
			level.Warn(logger).Log("msg", "w")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("msg=d")), out)
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("msg=i")), out)
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("msg=w")), out)
		})
	}
}

func TestNewAddsContext(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	level.Info(logger).Log("msg", "loaded", "sheets", 2)
	out := buf.String()
	assert.Contains(t, out, "ts=")
	assert.Contains(t, out, "caller=")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "sheets=2")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)
}
