package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Super-Protocol/price-aggregator-dashboard/internal/board"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/grafana"
	"github.com/Super-Protocol/price-aggregator-dashboard/internal/jsonutil"
)

func testBoard() grafana.Dashboard {
	return board.Build(board.Options{
		Now:    func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
		NewUID: func() string { return "abcd1234" },
	})
}

func TestWrite_RoundTrip(t *testing.T) {
	d := testBoard()
	path := filepath.Join(t.TempDir(), "dashboard.json")

	require.NoError(t, Write(d, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed grafana.Dashboard
	require.NoError(t, jsonutil.UnmarshalWithContext(data, &parsed, "parse dashboard"))

	require.Len(t, parsed.Panels, len(d.Panels))
	for i, p := range parsed.Panels {
		assert.Equal(t, d.Panels[i].ID, p.ID, "panel %d id", i)
		assert.Equal(t, d.Panels[i].Type, p.Type, "panel %d type", i)
		assert.Equal(t, d.Panels[i].GridPos, p.GridPos, "panel %d grid position", i)
	}
	assert.Equal(t, d.Title, parsed.Title)
	assert.Equal(t, d.UID, parsed.UID)
	assert.Len(t, parsed.Templating.List, 4)
}

func TestWrite_StableFormatting(t *testing.T) {
	d := testBoard()
	path := filepath.Join(t.TempDir(), "dashboard.json")

	require.NoError(t, Write(d, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasSuffix(out, "}\n"), "file must end with a trailing newline")
	assert.True(t, strings.HasPrefix(out, "{\n  \"__inputs\""), "root keys use two-space indentation")
	assert.Contains(t, out, "Should be > 0", "descriptions stay unescaped")
	assert.Contains(t, out, `"refId": "A"`)

	// Identical documents serialize byte-identically.
	other := filepath.Join(t.TempDir(), "again.json")
	require.NoError(t, Write(testBoard(), other))
	again, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestWrite_UnwritablePath(t *testing.T) {
	d := testBoard()
	path := filepath.Join(t.TempDir(), "missing", "dashboard.json")

	err := Write(d, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write dashboard")
}
