package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqbuf-generator/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	res := make([]string, 0, len(ds))
	for _, d := range ds {
		res = append(res, d.Code)
	}

	return res
}

func mustParse(t *testing.T, yaml string) *File {
	t.Helper()

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return mf
}

func TestValidate_Valid(t *testing.T) {
	mf := mustParse(t, `
package: ints
instances:
  - int
  - name: Point
    type: geom.Point
    import: example.com/geom
  - name: Bytes
    type: "[]byte"
  - name: Lookup
    type: map[string]*geom.Point
    import: example.com/geom
`)

	res := Validate(mf)
	assert.True(t, res.IsValid(), "unexpected errors: %v", res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"manifest_is_nil"}, codes(res.Errors))
}

func TestValidate_FileLevel(t *testing.T) {
	mf := &File{Version: "2", Package: "my-pkg", Runtime: ""}

	res := Validate(mf)
	assert.Equal(t, []string{"unsupported_version", "invalid_package", "missing_runtime", "no_instances"},
		codes(res.Errors))
}

func TestValidate_Names(t *testing.T) {
	mf := mustParse(t, `
instances:
  - "[]byte"
  - name: func
    type: int
  - name: small
    type: int
  - name: Dup
    type: int
  - name: Dup
    type: string
    file: other.go
`)

	res := Validate(mf)
	assert.ElementsMatch(t, []string{"missing_name", "invalid_name", "duplicate_name"}, codes(res.Errors))
	assert.Equal(t, []string{"unexported_name"}, codes(res.Warnings))

	assert.Equal(t, "#0", res.Errors[0].Instance)
}

func TestValidate_Types(t *testing.T) {
	mf := mustParse(t, `
instances:
  - name: Empty
    type: ""
  - name: Broken
    type: "map[string"
  - name: Literal
    type: "42"
  - name: NoImport
    type: geom.Point
  - name: Two
    type: map[a.K]b.V
    import: example.com/a
  - name: Unused
    type: int
    import: example.com/geom
`)

	res := Validate(mf)
	assert.Equal(t,
		[]string{"missing_type", "invalid_type", "invalid_type", "missing_import", "multiple_qualifiers"},
		codes(res.Errors))
	assert.Equal(t, []string{"unused_import"}, codes(res.Warnings))
}

func TestValidate_Files(t *testing.T) {
	mf := mustParse(t, `
instances:
  - name: A
    type: int
    file: sub/a.go
  - name: B
    type: int
    file: b.txt
  - name: C
    type: int
    file: c_test.go
  - name: D
    type: int
    file: shared.go
  - name: E
    type: int
    file: shared.go
`)

	res := Validate(mf)
	assert.Equal(t, []string{"invalid_file", "invalid_file", "invalid_file", "duplicate_file"}, codes(res.Errors))
	assert.Equal(t, "E", res.Errors[3].Instance)
}

func TestQualifiers(t *testing.T) {
	expr, err := ParseTypeExpr("map[geom.Key][]*geom.Point")
	require.NoError(t, err)
	assert.Equal(t, []string{"geom"}, Qualifiers(expr))

	expr, err = ParseTypeExpr("chan struct{}")
	require.NoError(t, err)
	assert.Empty(t, Qualifiers(expr))

	_, err = ParseTypeExpr("a + b")
	require.Error(t, err)
}
