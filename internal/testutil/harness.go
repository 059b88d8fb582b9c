package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/pagegrid/internal/app"
	"github.com/specialistvlad/pagegrid/internal/config"
	"github.com/specialistvlad/pagegrid/internal/hcl_adapter"
	"github.com/specialistvlad/pagegrid/internal/registry"
	"github.com/specialistvlad/pagegrid/internal/toml_adapter"
)

// logsEnabled dumps the captured logs of every harness run when set.
const logsEnabled = "PAGEGRID_TEST_LOGS"

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg, modules...)
}

// RunIntegrationTestWithContext writes files under a temporary root, then
// builds and runs an App over it. File names are relative to the root; the
// App reads layouts from "layouts/" and declarations from "modules/". Fields
// of cfg that locate files or logs are overwritten.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	layoutDir := filepath.Join(tmpDir, "layouts")
	modulesDir := filepath.Join(tmpDir, "modules")
	require.NoError(t, os.Mkdir(layoutDir, 0755))
	require.NoError(t, os.Mkdir(modulesDir, 0755))

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	logBuffer := &SafeBuffer{}
	outBuffer := &SafeBuffer{}

	cfg.LayoutPath = layoutDir
	cfg.ModulesPath = modulesDir
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	cfg.LogWriter = logBuffer
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv(logsEnabled) == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(ctx, outBuffer, appConfig, config.NewMultiLoader(hcl_adapter.NewLoader(), toml_adapter.NewLoader()), modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
