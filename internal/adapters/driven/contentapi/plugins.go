package contentapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// ListPlugins returns every field plugin definition of the space.
func (c *Client) ListPlugins(ctx context.Context, spaceID int64) ([]domain.Plugin, error) {
	var out struct {
		Plugins []domain.Plugin `json:"field_types"`
	}
	path := fmt.Sprintf("/spaces/%d/field_types", spaceID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Plugins, nil
}

// CreatePlugin creates a field plugin.
func (c *Client) CreatePlugin(ctx context.Context, spaceID int64, p domain.Plugin) (*domain.Plugin, error) {
	body := struct {
		Plugin domain.Plugin `json:"field_type"`
	}{Plugin: p}

	var out struct {
		Plugin domain.Plugin `json:"field_type"`
	}
	path := fmt.Sprintf("/spaces/%d/field_types", spaceID)
	if _, err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Plugin, nil
}

// UpdatePlugin updates an existing field plugin by ID.
func (c *Client) UpdatePlugin(ctx context.Context, spaceID int64, p domain.Plugin) (*domain.Plugin, error) {
	body := struct {
		Plugin domain.Plugin `json:"field_type"`
	}{Plugin: p}

	var out struct {
		Plugin domain.Plugin `json:"field_type"`
	}
	path := fmt.Sprintf("/spaces/%d/field_types/%d", spaceID, p.ID)
	if _, err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Plugin, nil
}
