package contentapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// ListRoles returns every space role definition.
func (c *Client) ListRoles(ctx context.Context, spaceID int64) ([]domain.Role, error) {
	var out struct {
		Roles []domain.Role `json:"space_roles"`
	}
	path := fmt.Sprintf("/spaces/%d/space_roles", spaceID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

// CreateRole creates a space role.
func (c *Client) CreateRole(ctx context.Context, spaceID int64, r domain.Role) (*domain.Role, error) {
	body := struct {
		Role domain.Role `json:"space_role"`
	}{Role: r}

	var out struct {
		Role domain.Role `json:"space_role"`
	}
	path := fmt.Sprintf("/spaces/%d/space_roles", spaceID)
	if _, err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Role, nil
}

// UpdateRole updates an existing space role by ID.
func (c *Client) UpdateRole(ctx context.Context, spaceID int64, r domain.Role) (*domain.Role, error) {
	body := struct {
		Role domain.Role `json:"space_role"`
	}{Role: r}

	var out struct {
		Role domain.Role `json:"space_role"`
	}
	path := fmt.Sprintf("/spaces/%d/space_roles/%d", spaceID, r.ID)
	if _, err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Role, nil
}
