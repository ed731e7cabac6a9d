package contentapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// ListDatasources returns every datasource of the space, without entries.
func (c *Client) ListDatasources(ctx context.Context, spaceID int64) ([]domain.Datasource, error) {
	var out struct {
		Datasources []domain.Datasource `json:"datasources"`
	}
	path := fmt.Sprintf("/spaces/%d/datasources", spaceID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Datasources, nil
}

// CreateDatasource creates a datasource.
func (c *Client) CreateDatasource(ctx context.Context, spaceID int64, d domain.Datasource) (*domain.Datasource, error) {
	body := struct {
		Datasource domain.Datasource `json:"datasource"`
	}{Datasource: d}

	var out struct {
		Datasource domain.Datasource `json:"datasource"`
	}
	path := fmt.Sprintf("/spaces/%d/datasources", spaceID)
	if _, err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Datasource, nil
}

// UpdateDatasource updates an existing datasource by ID.
func (c *Client) UpdateDatasource(ctx context.Context, spaceID int64, d domain.Datasource) (*domain.Datasource, error) {
	body := struct {
		Datasource domain.Datasource `json:"datasource"`
	}{Datasource: d}

	var out struct {
		Datasource domain.Datasource `json:"datasource"`
	}
	path := fmt.Sprintf("/spaces/%d/datasources/%d", spaceID, d.ID)
	if _, err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Datasource, nil
}

// ListDatasourceEntries returns the name/value entries of a datasource.
func (c *Client) ListDatasourceEntries(ctx context.Context, spaceID, datasourceID int64) ([]domain.DatasourceEntry, error) {
	var out struct {
		DatasourceEntries []domain.DatasourceEntry `json:"datasource_entries"`
	}
	path := fmt.Sprintf("/spaces/%d/datasource_entries?datasource_id=%d", spaceID, datasourceID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.DatasourceEntries, nil
}

// CreateDatasourceEntry creates one entry in a datasource.
func (c *Client) CreateDatasourceEntry(ctx context.Context, spaceID, datasourceID int64, e domain.DatasourceEntry) (*domain.DatasourceEntry, error) {
	body := struct {
		DatasourceEntry struct {
			domain.DatasourceEntry
			DatasourceID int64 `json:"datasource_id"`
		} `json:"datasource_entry"`
	}{}
	body.DatasourceEntry.DatasourceEntry = e
	body.DatasourceEntry.DatasourceID = datasourceID

	var out struct {
		DatasourceEntry domain.DatasourceEntry `json:"datasource_entry"`
	}
	path := fmt.Sprintf("/spaces/%d/datasource_entries", spaceID)
	if _, err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out.DatasourceEntry, nil
}

// UpdateDatasourceEntry updates one entry of a datasource by ID.
func (c *Client) UpdateDatasourceEntry(ctx context.Context, spaceID, datasourceID int64, e domain.DatasourceEntry) (*domain.DatasourceEntry, error) {
	body := struct {
		DatasourceEntry struct {
			domain.DatasourceEntry
			DatasourceID int64 `json:"datasource_id"`
		} `json:"datasource_entry"`
	}{}
	body.DatasourceEntry.DatasourceEntry = e
	body.DatasourceEntry.DatasourceID = datasourceID

	var out struct {
		DatasourceEntry domain.DatasourceEntry `json:"datasource_entry"`
	}
	path := fmt.Sprintf("/spaces/%d/datasource_entries/%d", spaceID, e.ID)
	if _, err := c.do(ctx, http.MethodPut, path, body, &out); err != nil {
		return nil, err
	}
	return &out.DatasourceEntry, nil
}
