package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/tj/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		input       string
		expected    slog.Level
		expectedErr bool
	}{
		"Empty":   {input: "", expected: slog.LevelInfo},
		"Debug":   {input: "debug", expected: slog.LevelDebug},
		"Upper":   {input: "WARN", expected: slog.LevelWarn},
		"Warning": {input: "warning", expected: slog.LevelWarn},
		"Error":   {input: " error ", expected: slog.LevelError},
		"Unknown": {input: "trace", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			l, err := ParseLevel(tc.input)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, l)
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn")
	assert.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "count", 3)
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept count=3")

	_, err = New(&buf, "loud")
	assert.Error(t, err)
}
