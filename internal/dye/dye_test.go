package dye

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dyematch/internal/colour"
)

func TestDefaultCatalog(t *testing.T) {
	dyes, err := DefaultCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, dyes)

	seen := make(map[int]string, len(dyes))
	for _, d := range dyes {
		assert.NotEmpty(t, d.Name, "dye %d has no name", d.ID)

		// Every bundled hex must parse; a broken entry would poison all
		// searches.
		_, err := colour.ParseHex(d.Hex)
		assert.NoError(t, err, "dye %d (%s) has bad hex %q", d.ID, d.Name, d.Hex)

		if prev, dup := seen[d.ID]; dup {
			t.Errorf("duplicate dye id %d (%s and %s)", d.ID, prev, d.Name)
		}
		seen[d.ID] = d.Name
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dyes.json")
	content := `[
		{"id": 1, "name": "Test Red", "hex": "#FF0000", "category": "red", "source": "vendor"},
		{"id": 2, "name": "Test Blue", "hex": "#0000FF"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	dyes, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, dyes, 2)
	assert.Equal(t, Dye{ID: 1, Name: "Test Red", Hex: "#FF0000", Category: "red", Source: "vendor"}, dyes[0])
	assert.Equal(t, "Test Blue", dyes[1].Name)
}

func TestLoadCatalogErrors(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadCatalog(bad)
	require.Error(t, err)
}

// The bundled catalog must work end to end with the matcher.
func TestDefaultCatalogSearch(t *testing.T) {
	dyes, err := DefaultCatalog()
	require.NoError(t, err)

	target, err := colour.ParseHex("#B3242A") // Ruby Red's exact colour
	require.NoError(t, err)

	matches, err := FindMatches(target, dyes, colour.MethodCIEDE2000, Options{MaxResults: 3})
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Ruby Red", matches[0].Dye.Name)
	assert.Zero(t, matches[0].Distance)
	assert.Equal(t, colour.BandExcellent, matches[0].Band)
}
