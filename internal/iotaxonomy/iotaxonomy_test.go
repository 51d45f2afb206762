package iotaxonomy_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gncamtrap/internal/iotaxonomy"
	"github.com/gnames/gncamtrap/internal/iotesting"
	"github.com/gnames/gncamtrap/pkg/errcode"
	"github.com/gnames/gncamtrap/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := iotesting.WriteFile(t, dir, "tax.txt",
		"\n"+iotesting.Lion+"\n\n  "+iotesting.BrownBear+"  \n")

	lines, err := iotaxonomy.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{iotesting.Lion, iotesting.BrownBear}, lines)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	path := iotesting.WriteTaxonomy(t, t.TempDir())

	idx, err := iotaxonomy.Load(path)
	require.NoError(t, err)
	assert.Greater(idx.Len(), 0)

	anc, ok, err := idx.Ancestor(iotesting.Lion, taxonomy.Family)
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal(iotesting.FelidaeFamily, anc)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := iotaxonomy.Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.TaxonomyReadError, gnErr.Code)

	path := iotesting.WriteFile(t, dir, "bad.txt", "a;b;c\n")
	_, err = iotaxonomy.Load(path)
	require.Error(t, err)
	gnErr, ok = err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MalformedLabelError, gnErr.Code)
}
