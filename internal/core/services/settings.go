package services

import (
	"context"

	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driven"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driving"
)

// Ensure SettingsManager implements the interface.
var _ driving.SettingsService = (*SettingsManager)(nil)

// SettingsManager exposes the settings store to driving adapters.
type SettingsManager struct {
	store driven.SettingsStore
}

// NewSettingsManager creates a settings service over the given store.
func NewSettingsManager(store driven.SettingsStore) *SettingsManager {
	return &SettingsManager{store: store}
}

func (m *SettingsManager) Get(ctx context.Context, key string) (string, error) {
	return m.store.Get(ctx, key)
}

func (m *SettingsManager) Set(ctx context.Context, key, value string) error {
	return m.store.Set(ctx, key, value)
}

func (m *SettingsManager) Delete(ctx context.Context, key string) error {
	return m.store.Delete(ctx, key)
}

func (m *SettingsManager) List(ctx context.Context) (map[string]string, error) {
	return m.store.List(ctx)
}
