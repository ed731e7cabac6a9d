package driven

import "context"

// SettingsStore persists local key-value settings for the surrounding
// application shell.
type SettingsStore interface {
	// Get retrieves a setting. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set creates or replaces a setting.
	Set(ctx context.Context, key, value string) error

	// Delete removes a setting. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all settings.
	List(ctx context.Context) (map[string]string, error)

	// Close releases the underlying storage.
	Close() error
}
