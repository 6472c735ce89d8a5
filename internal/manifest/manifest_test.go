package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/exemplar/internal/example"
	"github.com/vk/exemplar/internal/registry"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	for _, spec := range []struct{ name, category string }{
		{"kw_defer", example.CategoryKeyword},
		{"kw_iota", example.CategoryKeyword},
		{"principle_srp", example.CategoryPrinciple},
		{"dp_observer_basic", example.CategoryPatternBasic},
	} {
		require.NoError(t, r.Register(&example.Example{
			Name:     spec.name,
			Category: spec.category,
			Title:    spec.name,
			Action:   func(ctx context.Context) error { return nil },
		}))
	}
	return r
}

func TestLoad_ParsesSuiteBlocks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "smoke.hcl", `
suite "smoke" {
  description = "fast confidence check"
  include     = ["kw_defer"]
  categories  = [category.principle]
  timeout     = "2s"
}

suite "keywords" {
  categories = [category.keyword]
}
`)

	model, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, 2, model.Len())

	smoke, err := model.Get("smoke")
	require.NoError(t, err)
	assert.Equal(t, "fast confidence check", smoke.Description)
	assert.Equal(t, []string{"kw_defer"}, smoke.Include)
	assert.Equal(t, []string{example.CategoryPrinciple}, smoke.Categories)
	assert.Equal(t, 2*time.Second, smoke.Timeout)

	keywords, err := model.Get("keywords")
	require.NoError(t, err)
	assert.Zero(t, keywords.Timeout)
}

func TestLoad_EmptyDirYieldsEmptyModel(t *testing.T) {
	t.Parallel()

	model, err := Load(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.Zero(t, model.Len())
}

func TestLoad_DuplicateSuiteNamesAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", `suite "smoke" {}`)
	writeManifest(t, dir, "b.hcl", `suite "smoke" {}`)

	_, err := Load(context.Background(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `suite "smoke"`)
	assert.Contains(t, err.Error(), "already declared")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "bad.hcl", `
suite "smoke" {
  timeout = "soon"
}
`)

	_, err := Load(context.Background(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}

func TestLoad_ParseErrorNamesTheFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeManifest(t, dir, "broken.hcl", `suite "smoke" {`)

	_, err := Load(context.Background(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestValidate_UnknownIncludeFailsStartup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "smoke.hcl", `
suite "smoke" {
  include = ["kw_defer", "kw_missing"]
}
`)
	model, err := Load(context.Background(), dir)
	require.NoError(t, err)

	err = model.Validate(context.Background(), testRegistry(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"kw_missing"`)
}

func TestValidate_UnknownCategoryFailsStartup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "smoke.hcl", `
suite "smoke" {
  categories = ["pattern-optimized"]
}
`)
	model, err := Load(context.Background(), dir)
	require.NoError(t, err)

	err = model.Validate(context.Background(), testRegistry(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"pattern-optimized"`)
}

func TestSelect_UnionInRegistryOrderWithoutDuplicates(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	suite := &Suite{
		Name: "mixed",
		// kw_iota is both included by name and matched by category; it must
		// appear once, at its registry position.
		Include:    []string{"kw_iota", "dp_observer_basic"},
		Categories: []string{example.CategoryKeyword},
	}

	names := suite.Select(reg)

	assert.Equal(t, []string{"kw_defer", "kw_iota", "dp_observer_basic"}, names)
}

func TestSelect_EmptySuiteSelectsNothing(t *testing.T) {
	t.Parallel()

	names := (&Suite{Name: "empty"}).Select(testRegistry(t))

	assert.Empty(t, names)
}
