package catalog_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reel/internal/catalog"
)

func TestParseBackendKind(t *testing.T) {
	for input, want := range map[string]catalog.BackendKind{
		"":        catalog.BackendAuto,
		"yaml":    catalog.BackendYAML,
		" SQLite": catalog.BackendSQLite,
	} {
		got, err := catalog.ParseBackendKind(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := catalog.ParseBackendKind("csv")
	assert.ErrorIs(t, err, catalog.ErrUnknownBackend)
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		kind catalog.BackendKind
		file string
		want any
	}{
		{name: "auto yaml", kind: catalog.BackendAuto, file: "catalog.yaml", want: &catalog.YAMLBackend{}},
		{name: "auto unknown extension", kind: catalog.BackendAuto, file: "catalog.txt", want: &catalog.YAMLBackend{}},
		{name: "auto db", kind: catalog.BackendAuto, file: "catalog.db", want: &catalog.SQLiteBackend{}},
		{name: "auto sqlite3", kind: catalog.BackendAuto, file: "catalog.SQLITE3", want: &catalog.SQLiteBackend{}},
		{name: "explicit sqlite wins over extension", kind: catalog.BackendSQLite, file: "catalog.yaml", want: &catalog.SQLiteBackend{}},
		{name: "explicit yaml", kind: catalog.BackendYAML, file: "catalog.db", want: &catalog.YAMLBackend{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)

			b, err := catalog.OpenBackend(tt.kind, path)

			require.NoError(t, err)
			assert.IsType(t, tt.want, b)
			assert.Equal(t, path, b.Path())
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		_, err := catalog.OpenBackend(catalog.BackendKind("csv"), filepath.Join(dir, "x"))

		assert.ErrorIs(t, err, catalog.ErrUnknownBackend)
	})
}
