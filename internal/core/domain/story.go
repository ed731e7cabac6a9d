package domain

import "time"

// Story represents a content entry or folder inside a space.
// It is an immutable snapshot of the remote record once fetched.
type Story struct {
	// ID is the space-scoped numeric identifier.
	ID int64 `json:"id,omitempty"`

	// UUID is the globally unique identifier.
	UUID string `json:"uuid,omitempty"`

	// Name is the human-readable title.
	Name string `json:"name"`

	// Slug is the URL segment of this story.
	Slug string `json:"slug"`

	// FullSlug is the full hierarchical path.
	FullSlug string `json:"full_slug,omitempty"`

	// ParentID links to the parent folder. Zero means root.
	// The API serialises a root parent as null, which decodes to zero.
	ParentID int64 `json:"parent_id,omitempty"`

	// Position is the explicit sort position among siblings.
	Position int `json:"position"`

	// IsFolder marks folder records.
	IsFolder bool `json:"is_folder"`

	// IsStartpage marks the start page of a folder.
	IsStartpage bool `json:"is_startpage"`

	// Published is the publish state.
	Published bool `json:"published"`

	// Content is the arbitrary structured content payload.
	Content map[string]any `json:"content,omitempty"`

	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Draft returns a copy of the story suitable for creation in another space:
// identity fields (id, uuid) are stripped, the parent is reset to the given
// destination parent, and every other field is kept.
func (s Story) Draft(parentID int64) Story {
	draft := s
	draft.ID = 0
	draft.UUID = ""
	draft.ParentID = parentID
	return draft
}
