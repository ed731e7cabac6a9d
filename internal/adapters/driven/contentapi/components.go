package contentapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// ListComponents returns every component definition of the space.
func (c *Client) ListComponents(ctx context.Context, spaceID int64) ([]domain.Component, error) {
	var out struct {
		Components []domain.Component `json:"components"`
	}
	path := fmt.Sprintf("/spaces/%d/components", spaceID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Components, nil
}

// CreateComponent creates a component definition.
func (c *Client) CreateComponent(ctx context.Context, spaceID int64, component domain.Component) (*domain.Component, error) {
	body := struct {
		Component domain.Component `json:"component"`
	}{Component: component}

	var out struct {
		Component domain.Component `json:"component"`
	}
	path := fmt.Sprintf("/spaces/%d/components", spaceID)
	if _, err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Component, nil
}

// UpdateComponent updates an existing component definition by ID.
func (c *Client) UpdateComponent(ctx context.Context, spaceID int64, component domain.Component) (*domain.Component, error) {
	body := struct {
		Component domain.Component `json:"component"`
	}{Component: component}

	var out struct {
		Component domain.Component `json:"component"`
	}
	path := fmt.Sprintf("/spaces/%d/components/%d", spaceID, component.ID)
	if _, err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Component, nil
}
