package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "geom", PkgAlias("example.com/geom"))
	assert.Equal(t, "yaml", PkgAlias("gopkg.in/yaml"))
	assert.Equal(t, "pebble", PkgAlias("github.com/cockroachdb/pebble/v2"))
	assert.Equal(t, "v2", PkgAlias("v2"))
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string(nil))
	assert.False(t, ok)
}
