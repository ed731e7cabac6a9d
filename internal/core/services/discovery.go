package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driving"
	"github.com/meridian-labs/spacesync-cli/internal/logger"
)

// ProjectConfigFile is the optional per-project configuration read by the
// discoverer.
const ProjectConfigFile = ".spacesync.toml"

// namePrefix is the optional convention prefix stripped from resource names.
const namePrefix = "sb."

// suffixesByKind holds the filename suffix families per resource kind.
var suffixesByKind = map[domain.ResourceKind][]string{
	domain.KindComponents:  {".component.json", ".component.js", ".component.ts"},
	domain.KindDatasources: {".datasource.json", ".datasources.json"},
	domain.KindRoles:       {".roles.json", ".role.json"},
}

// skipDirs are never entered during discovery.
var skipDirs = map[string]bool{
	".git":     true,
	"dist":     true,
	"build":    true,
	"coverage": true,
	".next":    true,
}

// dependencyDirs are entered, but everything below them is external.
var dependencyDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// defaultComponentDirs are the component scan roots used when the project
// config names none.
var defaultComponentDirs = []string{"."}

// Ensure DiscoveryService implements the interface.
var _ driving.Discoverer = (*DiscoveryService)(nil)

// DiscoveryService scans a project tree for resource-definition files by
// naming convention. Discovery is independent of network state and is
// rebuilt from scratch on every request.
type DiscoveryService struct{}

// NewDiscoveryService creates a discoverer.
func NewDiscoveryService() *DiscoveryService {
	return &DiscoveryService{}
}

// projectConfig is the subset of the project config the discoverer reads.
type projectConfig struct {
	Discovery struct {
		ComponentDirs []string `toml:"component_dirs"`
	} `toml:"discovery"`
}

// Discover walks workingDir and returns every definition file of the given
// kind, deduplicated by logical name (first occurrence wins) and sorted
// local-first, then by name. Unreadable directories are skipped silently;
// the call fails only for an unknown kind.
func (s *DiscoveryService) Discover(ctx context.Context, kind domain.ResourceKind, workingDir string) ([]domain.DiscoveredResource, error) {
	suffixes, ok := suffixesByKind[kind]
	if !ok {
		return nil, domain.ErrUnsupportedKind
	}

	roots := []string{"."}
	if kind == domain.KindComponents {
		roots = s.componentRoots(workingDir)
	}

	seen := make(map[string]bool)
	var resources []domain.DiscoveredResource

	for _, root := range roots {
		base := filepath.Join(workingDir, root)
		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, never surfaced.
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() {
				if skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			name, matched := matchResourceName(d.Name(), suffixes)
			if !matched || seen[name] {
				return nil
			}
			seen[name] = true

			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			resources = append(resources, domain.DiscoveredResource{
				Name:     name,
				Path:     abs,
				Location: classifyLocation(base, path),
			})
			return nil
		})
		if err != nil && err != ctx.Err() {
			logger.Debug("discovery walk %s: %v", base, err)
		}
		if ctx.Err() != nil {
			return resources, ctx.Err()
		}
	}

	sort.SliceStable(resources, func(i, j int) bool {
		if resources[i].Location != resources[j].Location {
			return resources[i].Location == domain.LocationLocal
		}
		return resources[i].Name < resources[j].Name
	})
	return resources, nil
}

// componentRoots reads the project config for custom component scan roots.
// On any read or parse failure it falls back to the defaults without
// surfacing an error.
func (s *DiscoveryService) componentRoots(workingDir string) []string {
	data, err := os.ReadFile(filepath.Join(workingDir, ProjectConfigFile))
	if err != nil {
		return defaultComponentDirs
	}

	var cfg projectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		logger.Debug("discovery config unreadable, using defaults: %v", err)
		return defaultComponentDirs
	}
	if len(cfg.Discovery.ComponentDirs) == 0 {
		return defaultComponentDirs
	}

	roots := make([]string, 0, len(cfg.Discovery.ComponentDirs))
	for _, dir := range cfg.Discovery.ComponentDirs {
		if filepath.IsLocal(dir) {
			roots = append(roots, dir)
		}
	}
	if len(roots) == 0 {
		return defaultComponentDirs
	}
	return roots
}

// matchResourceName matches a filename against a suffix family and derives
// the logical resource name: the matched suffix and the optional convention
// prefix are stripped.
func matchResourceName(filename string, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		if !strings.HasSuffix(filename, suffix) {
			continue
		}
		name := strings.TrimSuffix(filename, suffix)
		name = strings.TrimPrefix(name, namePrefix)
		if name == "" {
			return "", false
		}
		return name, true
	}
	return "", false
}

// classifyLocation marks resources under a dependency directory external.
func classifyLocation(base, path string) domain.ResourceLocation {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return domain.LocationLocal
	}
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if dependencyDirs[segment] {
			return domain.LocationExternal
		}
	}
	return domain.LocationLocal
}
