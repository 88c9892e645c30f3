package modinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0o644))

	return dir
}

func TestFind_WalksUp(t *testing.T) {
	root := writeModule(t, "module example.com/shapes\n\ngo 1.24\n")
	nested := filepath.Join(root, "internal", "geom")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/shapes", m.Path)
	assert.Equal(t, "1.24", m.GoVersion)

	p, err := m.ImportPath(nested)
	require.NoError(t, err)
	assert.Equal(t, "example.com/shapes/internal/geom", p)

	p, err = m.ImportPath(root)
	require.NoError(t, err)
	assert.Equal(t, "example.com/shapes", p)
}

func TestFind_MissingOutputDir(t *testing.T) {
	root := writeModule(t, "module example.com/shapes\n")

	m, err := Find(filepath.Join(root, "gen", "buffers"))
	require.NoError(t, err)
	assert.Equal(t, root, m.Dir)
	assert.Empty(t, m.GoVersion)
}

func TestFind_MissingModuleDirective(t *testing.T) {
	root := writeModule(t, "go 1.24\n")

	_, err := Find(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing module directive")
}

func TestImportPath_Outside(t *testing.T) {
	root := writeModule(t, "module example.com/shapes\n")
	m, err := Find(root)
	require.NoError(t, err)

	_, err = m.ImportPath(filepath.Dir(root))
	require.Error(t, err)
}
