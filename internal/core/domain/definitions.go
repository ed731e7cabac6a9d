package domain

import "reflect"

// Component is a component (block) schema definition.
type Component struct {
	ID          int64              `json:"id,omitempty"`
	Name        string             `json:"name"`
	DisplayName string             `json:"display_name,omitempty"`
	Schema      map[string]any     `json:"schema,omitempty"`
	IsRoot      bool               `json:"is_root"`
	IsNestable  bool               `json:"is_nestable"`
	Image       string             `json:"image,omitempty"`
	Presets     []ComponentPreset  `json:"presets,omitempty"`
}

// ComponentPreset is a named field preset attached to a component.
type ComponentPreset struct {
	Name   string         `json:"name"`
	Preset map[string]any `json:"preset,omitempty"`
}

// EquivalentTo reports whether the comparable fields of two components match.
// Identity fields and presets are excluded; preset pushing is a separate
// policy toggle of the component sync.
func (c Component) EquivalentTo(other Component) bool {
	return c.Name == other.Name &&
		c.DisplayName == other.DisplayName &&
		c.IsRoot == other.IsRoot &&
		c.IsNestable == other.IsNestable &&
		c.Image == other.Image &&
		reflect.DeepEqual(c.Schema, other.Schema)
}

// Datasource is a lookup table definition with optional entries.
type Datasource struct {
	ID      int64             `json:"id,omitempty"`
	Name    string            `json:"name"`
	Slug    string            `json:"slug"`
	Entries []DatasourceEntry `json:"entries,omitempty"`
}

// DatasourceEntry is one name/value pair of a datasource.
type DatasourceEntry struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EquivalentTo reports whether name and slug match. Entries are reconciled
// separately when entry syncing is enabled.
func (d Datasource) EquivalentTo(other Datasource) bool {
	return d.Name == other.Name && d.Slug == other.Slug
}

// Role is a space role definition.
type Role struct {
	ID           int64    `json:"id,omitempty"`
	Name         string   `json:"role"`
	Permissions  []string `json:"permissions,omitempty"`
	AllowedPaths []int64  `json:"allowed_paths,omitempty"`
}

// EquivalentTo reports whether the comparable fields of two roles match.
func (r Role) EquivalentTo(other Role) bool {
	return r.Name == other.Name &&
		reflect.DeepEqual(r.Permissions, other.Permissions) &&
		reflect.DeepEqual(r.AllowedPaths, other.AllowedPaths)
}

// Plugin is a field plugin definition with its source body.
type Plugin struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Body string `json:"body,omitempty"`
}

// EquivalentTo reports whether name and body match.
func (p Plugin) EquivalentTo(other Plugin) bool {
	return p.Name == other.Name && p.Body == other.Body
}
