package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixtures under testdata mirror the published JSON Schema: every file
// under valid/ validates against it, every file under invalid/ does not.
// Feeding them through Parse pins the codec to the schema without executing
// the schema itself.
func TestSchemaContract(t *testing.T) {
	codec := newTestCodec(t, false)

	t.Run("schema-valid documents parse", func(t *testing.T) {
		for _, name := range fixtureNames(t, "testdata/valid") {
			t.Run(name, func(t *testing.T) {
				text, err := os.ReadFile(filepath.Join("testdata/valid", name))
				require.NoError(t, err)

				schedule, err := codec.Parse(string(text))
				require.NoError(t, err)
				require.NotNil(t, schedule)

				// Schema-valid documents survive a full round trip.
				out, err := codec.Serialize(schedule)
				require.NoError(t, err)
				reparsed, err := codec.Parse(out)
				require.NoError(t, err)
				assert.True(t, schedule.Equal(reparsed))
			})
		}
	})

	t.Run("schema-invalid documents fail", func(t *testing.T) {
		for _, name := range fixtureNames(t, "testdata/invalid") {
			t.Run(name, func(t *testing.T) {
				text, err := os.ReadFile(filepath.Join("testdata/invalid", name))
				require.NoError(t, err)

				schedule, err := codec.Parse(string(text))
				assert.Error(t, err)
				assert.Nil(t, schedule)
			})
		}
	})
}

func fixtureNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	return names
}
