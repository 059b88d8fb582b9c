package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/pagegrid/internal/page"
	"github.com/specialistvlad/pagegrid/internal/pageid"
)

// RequirePage returns the stored page with the given raw ID, failing the
// test when the run did not produce it.
func RequirePage(t *testing.T, result *HarnessResult, rawID string) *page.Page {
	t.Helper()

	require.NoError(t, result.Err)
	require.NotNil(t, result.App, "app was not created")

	id, err := pageid.Parse(rawID)
	require.NoError(t, err)

	p, err := result.App.Store().Get(context.Background(), id)
	require.NoError(t, err, "page %s was not assembled", rawID)
	return p
}
