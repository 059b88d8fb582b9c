package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		expectErr string
		expected  string
	}{
		{name: "defaults output to text", cfg: Config{LayoutPath: "layouts"}, expected: OutputText},
		{name: "json output", cfg: Config{LayoutPath: "layouts", OutputFormat: OutputJSON}, expected: OutputJSON},
		{name: "missing layout path", cfg: Config{}, expectErr: "LayoutPath"},
		{name: "invalid site", cfg: Config{LayoutPath: "layouts", Site: "classic"}, expectErr: "invalid site filter"},
		{name: "invalid output", cfg: Config{LayoutPath: "layouts", OutputFormat: "yaml"}, expectErr: "invalid output format"},
		{name: "negative port", cfg: Config{LayoutPath: "layouts", HealthcheckPort: -1}, expectErr: "invalid healthcheck port"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)

			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.OutputFormat)
		})
	}
}
