package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: ints
comments: false
instances:
  - name: Int
    type: int
  - name: Point
    type: geom.Point
    import: example.com/geom
    file: points.go
  - string
  - type: uint8
`

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, mf)

	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, "ints", mf.Package)
	assert.False(t, mf.GenerateComments())
	assert.Equal(t, DefaultRuntime, mf.Runtime)
	require.Len(t, mf.Instances, 4)

	assert.Equal(t, Instance{Name: "Int", Type: "int", File: "int_array.go"}, mf.Instances[0])
	assert.Equal(t, Instance{
		Name:   "Point",
		Type:   "geom.Point",
		Import: "example.com/geom",
		File:   "points.go",
	}, mf.Instances[1])

	// Shorthand entries derive their name from the type.
	assert.Equal(t, Instance{Name: "String", Type: "string", File: "string_array.go"}, mf.Instances[2])
	assert.Equal(t, Instance{Name: "Uint8", Type: "uint8", File: "uint8_array.go"}, mf.Instances[3])
}

func TestParse_Defaults(t *testing.T) {
	mf, err := Parse([]byte("instances: [int]\n"))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, mf.Version)
	assert.Empty(t, mf.Package)
	assert.True(t, mf.GenerateComments())
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("instances: [\n"))
	require.Error(t, err)

	_, err = Parse([]byte("instances:\n  - [int, string]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected type expression or instance mapping")
}

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seqbuf.yaml")

	orig := &File{
		Version: "1",
		Package: "geo",
		Runtime: DefaultRuntime,
		Instances: []Instance{
			{Name: "Point", Type: "geom.Point", Import: "example.com/geom", File: "point_array.go"},
		},
	}

	require.NoError(t, WriteFile(orig, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, orig, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNaming(t *testing.T) {
	cases := []struct {
		name        string
		typeName    string
		constructor string
		file        string
	}{
		{"Int", "IntArray", "NewIntArray", "int_array.go"},
		{"HTTPHeader", "HTTPHeaderArray", "NewHTTPHeaderArray", "http_header_array.go"},
		{"Point3D", "Point3DArray", "NewPoint3DArray", "point3d_array.go"},
		{"byteSlice", "byteSliceArray", "newByteSliceArray", "byte_slice_array.go"},
	}

	for _, tc := range cases {
		inst := Instance{Name: tc.name}
		assert.Equal(t, tc.typeName, inst.TypeName())
		assert.Equal(t, tc.constructor, inst.Constructor())
		assert.Equal(t, tc.file, inst.DefaultFile())
	}
}

func TestDeriveName(t *testing.T) {
	assert.Equal(t, "Point", DeriveName("geom.Point"))
	assert.Equal(t, "Float64", DeriveName("float64"))
	assert.Empty(t, DeriveName("[]byte"))
	assert.Empty(t, DeriveName("*int"))
}
