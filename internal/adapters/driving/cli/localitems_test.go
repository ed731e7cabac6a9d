package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefinitions_FillsNameFromResource(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "hero.component.json", `{"schema":{"title":{"type":"text"}}}`)

	resources := []domain.DiscoveredResource{
		{Name: "hero", Path: path, Location: domain.LocationLocal},
	}

	items, err := loadDefinitions(resources, func(c *domain.Component, name string) {
		if c.Name == "" {
			c.Name = name
		}
	})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "hero", items[0].Name)
	assert.NotNil(t, items[0].Schema)
}

func TestLoadDefinitions_ExternalResourcesExcluded(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "shared.component.json", `{}`)

	resources := []domain.DiscoveredResource{
		{Name: "shared", Path: path, Location: domain.LocationExternal},
	}

	items, err := loadDefinitions(resources, func(c *domain.Component, name string) { c.Name = name })

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadDefinitions_ScriptFilesSkipped(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "hero.component.ts", `export default {}`)

	resources := []domain.DiscoveredResource{
		{Name: "hero", Path: path, Location: domain.LocationLocal},
	}

	items, err := loadDefinitions(resources, func(c *domain.Component, name string) { c.Name = name })

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadDefinitions_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "broken.component.json", `{not json`)

	resources := []domain.DiscoveredResource{
		{Name: "broken", Path: path, Location: domain.LocationLocal},
	}

	_, err := loadDefinitions(resources, func(c *domain.Component, name string) { c.Name = name })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadPlugins(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "color-picker.js", "const field = {}")

	plugins, err := loadPlugins([]string{path})

	require.NoError(t, err)
	require.Len(t, plugins, 1)
	assert.Equal(t, "color-picker", plugins[0].Name)
	assert.Equal(t, "const field = {}", plugins[0].Body)
}

func TestLoadPlugins_MissingFile(t *testing.T) {
	_, err := loadPlugins([]string{filepath.Join(t.TempDir(), "absent.js")})

	assert.Error(t, err)
}
