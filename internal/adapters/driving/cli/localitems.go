package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/logger"
)

// loadDefinitions reads the local definition files behind discovered
// resources into typed values. Only JSON definition files are parsed;
// script-format definitions are reported and skipped. External resources
// are excluded from syncing.
func loadDefinitions[T any](resources []domain.DiscoveredResource, name func(*T, string)) ([]T, error) {
	items := make([]T, 0, len(resources))
	for _, res := range resources {
		if res.Location != domain.LocationLocal {
			continue
		}
		if !strings.HasSuffix(res.Path, ".json") {
			logger.Warn("skipping %s: only JSON definitions can be synced", res.Path)
			continue
		}

		data, err := os.ReadFile(res.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", res.Path, err)
		}
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("parse %s: %w", res.Path, err)
		}
		name(&item, res.Name)
		items = append(items, item)
	}
	return items, nil
}

// loadPlugins reads explicitly named plugin source files. The plugin name
// is the base filename without extension.
func loadPlugins(paths []string) ([]domain.Plugin, error) {
	plugins := make([]domain.Plugin, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		plugins = append(plugins, domain.Plugin{Name: name, Body: string(data)})
	}
	return plugins, nil
}
