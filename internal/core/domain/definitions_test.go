package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponent_EquivalentTo(t *testing.T) {
	base := Component{
		Name:       "hero",
		IsNestable: true,
		Schema:     map[string]any{"title": map[string]any{"type": "text"}},
	}

	tests := []struct {
		name  string
		other Component
		want  bool
	}{
		{
			name:  "identical",
			other: Component{Name: "hero", IsNestable: true, Schema: map[string]any{"title": map[string]any{"type": "text"}}},
			want:  true,
		},
		{
			name:  "different schema",
			other: Component{Name: "hero", IsNestable: true, Schema: map[string]any{"title": map[string]any{"type": "markdown"}}},
			want:  false,
		},
		{
			name:  "different flags",
			other: Component{Name: "hero", IsRoot: true, IsNestable: true, Schema: map[string]any{"title": map[string]any{"type": "text"}}},
			want:  false,
		},
		{
			name: "identity and presets ignored",
			other: Component{
				ID: 99, Name: "hero", IsNestable: true,
				Schema:  map[string]any{"title": map[string]any{"type": "text"}},
				Presets: []ComponentPreset{{Name: "default"}},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.EquivalentTo(tt.other))
		})
	}
}

func TestDatasource_EquivalentTo(t *testing.T) {
	base := Datasource{Name: "countries", Slug: "countries"}

	assert.True(t, base.EquivalentTo(Datasource{ID: 5, Name: "countries", Slug: "countries"}))
	assert.False(t, base.EquivalentTo(Datasource{Name: "countries", Slug: "iso-countries"}))

	// Entries are reconciled separately and never affect equivalence.
	withEntries := Datasource{Name: "countries", Slug: "countries", Entries: []DatasourceEntry{{Name: "DE", Value: "Germany"}}}
	assert.True(t, base.EquivalentTo(withEntries))
}

func TestRole_EquivalentTo(t *testing.T) {
	base := Role{Name: "editor", Permissions: []string{"publish"}, AllowedPaths: []int64{1, 2}}

	assert.True(t, base.EquivalentTo(Role{ID: 3, Name: "editor", Permissions: []string{"publish"}, AllowedPaths: []int64{1, 2}}))
	assert.False(t, base.EquivalentTo(Role{Name: "editor", Permissions: []string{"publish", "delete"}, AllowedPaths: []int64{1, 2}}))
	assert.False(t, base.EquivalentTo(Role{Name: "editor", Permissions: []string{"publish"}, AllowedPaths: []int64{1}}))
}

func TestPlugin_EquivalentTo(t *testing.T) {
	base := Plugin{Name: "color-picker", Body: "const x = 1"}

	assert.True(t, base.EquivalentTo(Plugin{ID: 8, Name: "color-picker", Body: "const x = 1"}))
	assert.False(t, base.EquivalentTo(Plugin{Name: "color-picker", Body: "const x = 2"}))
}
