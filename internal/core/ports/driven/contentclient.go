package driven

import (
	"context"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// StoryAPI accesses story records of a space.
type StoryAPI interface {
	// ListStories returns every story in the space. Pagination is handled
	// internally by the adapter.
	ListStories(ctx context.Context, spaceID int64) ([]domain.Story, error)

	// GetStory fetches a single full story including its content payload.
	GetStory(ctx context.Context, spaceID, storyID int64) (*domain.Story, error)

	// GetStoryBySlug looks a story up by its full slug.
	// An absent match returns nil, nil - not an error.
	GetStoryBySlug(ctx context.Context, spaceID int64, slug string) (*domain.Story, error)

	// CreateStory creates a story in the space and returns the created
	// record with its new identity.
	CreateStory(ctx context.Context, spaceID int64, story domain.Story) (*domain.Story, error)
}

// ComponentAPI accesses component definitions of a space.
type ComponentAPI interface {
	ListComponents(ctx context.Context, spaceID int64) ([]domain.Component, error)
	CreateComponent(ctx context.Context, spaceID int64, c domain.Component) (*domain.Component, error)
	UpdateComponent(ctx context.Context, spaceID int64, c domain.Component) (*domain.Component, error)
}

// DatasourceAPI accesses datasource definitions and their entries.
type DatasourceAPI interface {
	ListDatasources(ctx context.Context, spaceID int64) ([]domain.Datasource, error)
	CreateDatasource(ctx context.Context, spaceID int64, d domain.Datasource) (*domain.Datasource, error)
	UpdateDatasource(ctx context.Context, spaceID int64, d domain.Datasource) (*domain.Datasource, error)

	ListDatasourceEntries(ctx context.Context, spaceID, datasourceID int64) ([]domain.DatasourceEntry, error)
	CreateDatasourceEntry(ctx context.Context, spaceID, datasourceID int64, e domain.DatasourceEntry) (*domain.DatasourceEntry, error)
	UpdateDatasourceEntry(ctx context.Context, spaceID, datasourceID int64, e domain.DatasourceEntry) (*domain.DatasourceEntry, error)
}

// RoleAPI accesses space role definitions.
type RoleAPI interface {
	ListRoles(ctx context.Context, spaceID int64) ([]domain.Role, error)
	CreateRole(ctx context.Context, spaceID int64, r domain.Role) (*domain.Role, error)
	UpdateRole(ctx context.Context, spaceID int64, r domain.Role) (*domain.Role, error)
}

// PluginAPI accesses field plugin definitions.
type PluginAPI interface {
	ListPlugins(ctx context.Context, spaceID int64) ([]domain.Plugin, error)
	CreatePlugin(ctx context.Context, spaceID int64, p domain.Plugin) (*domain.Plugin, error)
	UpdatePlugin(ctx context.Context, spaceID int64, p domain.Plugin) (*domain.Plugin, error)
}

// ContentClient is the full management API surface consumed by the engine.
// One client is addressed per-space via the spaceID argument; credentials
// are bound at construction time.
type ContentClient interface {
	StoryAPI
	ComponentAPI
	DatasourceAPI
	RoleAPI
	PluginAPI
}
