package domain

// ResourceKind is the category of resource being discovered or synced.
type ResourceKind string

const (
	KindComponents  ResourceKind = "components"
	KindDatasources ResourceKind = "datasources"
	KindRoles       ResourceKind = "roles"
	KindPlugins     ResourceKind = "plugins"
)

// DiscoverableKinds lists the kinds the file discoverer understands.
// Plugins are synced from explicitly named files instead.
var DiscoverableKinds = []ResourceKind{KindComponents, KindDatasources, KindRoles}

// ResourceLocation classifies where a discovered definition file lives.
type ResourceLocation string

const (
	// LocationLocal marks definitions authored in the project itself.
	LocationLocal ResourceLocation = "local"

	// LocationExternal marks definitions found under a dependency
	// directory such as node_modules or vendor.
	LocationExternal ResourceLocation = "external"
)

// DiscoveredResource is one resource-definition file found on disk.
type DiscoveredResource struct {
	// Name is the logical resource name derived from the filename.
	Name string

	// Path is the absolute file path.
	Path string

	// Location classifies the resource as local or external.
	Location ResourceLocation
}
