package contentapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/logger"
)

const (
	// storiesPerPage is the page size used when listing stories.
	storiesPerPage = 100

	// maxStoryPages is a hard safety cap on pagination.
	maxStoryPages = 1000

	// headerTotal carries the total record count on list responses.
	headerTotal = "Total"
)

// ListStories returns every story in the space. The API is paginated; the
// caller gets the accumulated result. Pagination stops when the accumulated
// count reaches the Total response header, a page comes back empty, or the
// page cap is hit.
func (c *Client) ListStories(ctx context.Context, spaceID int64) ([]domain.Story, error) {
	var all []domain.Story
	total := -1

	for page := 1; page <= maxStoryPages; page++ {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		var out struct {
			Stories []domain.Story `json:"stories"`
		}
		path := fmt.Sprintf("/spaces/%d/stories?page=%d&per_page=%d", spaceID, page, storiesPerPage)
		header, err := c.do(ctx, http.MethodGet, path, nil, &out)
		if err != nil {
			return nil, err
		}
		all = append(all, out.Stories...)

		if t := header.Get(headerTotal); t != "" {
			if v, err := strconv.Atoi(t); err == nil {
				total = v
			}
		}
		if total >= 0 && len(all) >= total {
			break
		}
		if len(out.Stories) == 0 {
			break
		}
	}

	logger.Debug("listed %d stories in space %d", len(all), spaceID)
	return all, nil
}

// GetStory fetches a single full story including its content payload.
func (c *Client) GetStory(ctx context.Context, spaceID, storyID int64) (*domain.Story, error) {
	var out struct {
		Story domain.Story `json:"story"`
	}
	path := fmt.Sprintf("/spaces/%d/stories/%d", spaceID, storyID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Story, nil
}

// GetStoryBySlug looks a story up by its full slug. An absent match is a
// valid null result, not an error.
func (c *Client) GetStoryBySlug(ctx context.Context, spaceID int64, slug string) (*domain.Story, error) {
	var out struct {
		Stories []domain.Story `json:"stories"`
	}
	path := fmt.Sprintf("/spaces/%d/stories?with_slug=%s", spaceID, url.QueryEscape(slug))
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Stories) == 0 {
		return nil, nil
	}
	return &out.Stories[0], nil
}

// CreateStory creates a story in the space and returns the created record.
func (c *Client) CreateStory(ctx context.Context, spaceID int64, story domain.Story) (*domain.Story, error) {
	body := struct {
		Story domain.Story `json:"story"`
	}{Story: story}

	var out struct {
		Story domain.Story `json:"story"`
	}
	path := fmt.Sprintf("/spaces/%d/stories", spaceID)
	if _, err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out.Story, nil
}
