package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name        string
		level       string
		format      string
		expectDebug bool
		expectJSON  bool
	}{
		{name: "debug text", level: "debug", format: "text", expectDebug: true},
		{name: "info json", level: "info", format: "json", expectJSON: true},
		{name: "upper case level", level: "DEBUG", format: "text", expectDebug: true},
		{name: "unknown level falls back to info", level: "verbose", format: "text"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(tc.level, tc.format, &buf)

			logger.Debug("debug line.")
			logger.Info("info line.")

			out := buf.String()
			assert.Contains(t, out, "info line.")
			assert.Equal(t, tc.expectDebug, bytes.Contains(buf.Bytes(), []byte("debug line.")))
			assert.Equal(t, tc.expectJSON, bytes.HasPrefix(buf.Bytes(), []byte("{")))
		})
	}
}
