package integration_tests

import "github.com/specialistvlad/pagegrid/internal/app"

func appConfig() app.Config {
	return app.Config{OutputFormat: app.OutputText}
}
