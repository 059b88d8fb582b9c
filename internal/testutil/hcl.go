package testutil

import (
	"testing"

	"github.com/specialistvlad/pagegrid/internal/app"
)

// RunLayoutTest runs a single layout HCL string with the built-in modules and
// default settings.
func RunLayoutTest(t *testing.T, layoutHCL string) *HarnessResult {
	t.Helper()
	return RunIntegrationTest(t, map[string]string{"layouts/main.hcl": layoutHCL}, app.Config{})
}
