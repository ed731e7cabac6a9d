package services

import (
	"context"
	"fmt"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driven"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driving"
	"github.com/meridian-labs/spacesync-cli/internal/logger"
)

// Ensure SyncerService implements the interface.
var _ driving.Syncer = (*SyncerService)(nil)

// SyncerService classifies local resource definitions against remote space
// state and applies them as create/update/skip.
type SyncerService struct {
	client driven.ContentClient
}

// NewSyncerService creates a syncer backed by the given API client.
func NewSyncerService(client driven.ContentClient) *SyncerService {
	return &SyncerService{client: client}
}

// resourceOps binds the kind-specific behaviour of one sync run.
// The classification control flow is identical for every kind.
type resourceOps[T any] struct {
	name       func(T) string
	equivalent func(local, remote T) bool
	create     func(ctx context.Context, local T) error
	update     func(ctx context.Context, local, remote T) error

	// forceUpdate updates equivalent items anyway (local wins).
	forceUpdate bool
	dryRun      bool
}

// classify runs the per-item state machine over every local item:
// Discovered -> {Creating | Updating | Skipped}, terminal
// {Created, Updated, Skipped, Error}. Items are processed sequentially so
// progress events arrive in item order; one item's failure never aborts the
// rest, and there are no retries.
func classify[T any](ctx context.Context, items, remote []T, ops resourceOps[T], emit func(domain.SyncProgressEvent)) domain.SyncOutcome {
	emit(domain.SyncProgressEvent{Type: domain.SyncEventStart, Total: len(items)})

	index := make(map[string]T, len(remote))
	for _, r := range remote {
		index[ops.name(r)] = r
	}

	var outcome domain.SyncOutcome
	for i, item := range items {
		current := i + 1
		name := ops.name(item)
		existing, present := index[name]

		progress := func(action domain.SyncAction, message string) {
			emit(domain.SyncProgressEvent{
				Type:    domain.SyncEventProgress,
				Current: current,
				Total:   len(items),
				Name:    name,
				Action:  action,
				Message: message,
			})
		}

		switch {
		case !present && !ops.dryRun:
			progress(domain.SyncActionCreating, "")
			if err := ops.create(ctx, item); err != nil {
				progress(domain.SyncActionError, err.Error())
				outcome.Errors = append(outcome.Errors, domain.SyncError{Name: name, Message: err.Error()})
				continue
			}
			progress(domain.SyncActionCreated, "")
			outcome.Created = append(outcome.Created, name)

		case present && (!ops.equivalent(item, existing) || ops.forceUpdate) && !ops.dryRun:
			progress(domain.SyncActionUpdating, "")
			if err := ops.update(ctx, item, existing); err != nil {
				progress(domain.SyncActionError, err.Error())
				outcome.Errors = append(outcome.Errors, domain.SyncError{Name: name, Message: err.Error()})
				continue
			}
			progress(domain.SyncActionUpdated, "")
			outcome.Updated = append(outcome.Updated, name)

		default:
			// Effectively identical, or the write is dry-run suppressed.
			progress(domain.SyncActionSkipped, "")
			outcome.Skipped = append(outcome.Skipped, name)
		}
	}

	emit(domain.SyncProgressEvent{Type: domain.SyncEventComplete, Current: len(items), Total: len(items)})
	return outcome
}

// emitter wraps a possibly-nil callback.
func emitter(onProgress driving.SyncProgressFunc) func(domain.SyncProgressEvent) {
	return func(ev domain.SyncProgressEvent) {
		if onProgress != nil {
			onProgress(ev)
		}
	}
}

// SyncComponents reconciles local component schemas against the space.
func (s *SyncerService) SyncComponents(ctx context.Context, spaceID int64, items []domain.Component, opts driving.ComponentSyncOptions, onProgress driving.SyncProgressFunc) (domain.SyncOutcome, error) {
	if spaceID == 0 {
		return domain.SyncOutcome{}, domain.ErrMissingSpace
	}
	remote, err := s.client.ListComponents(ctx, spaceID)
	if err != nil {
		return domain.SyncOutcome{}, fmt.Errorf("list components: %w", err)
	}
	logger.Debug("sync components: %d local, %d remote", len(items), len(remote))

	payload := func(c domain.Component) domain.Component {
		if !opts.PushPresets {
			c.Presets = nil
		}
		return c
	}

	ops := resourceOps[domain.Component]{
		name:       func(c domain.Component) string { return c.Name },
		equivalent: domain.Component.EquivalentTo,
		create: func(ctx context.Context, local domain.Component) error {
			_, err := s.client.CreateComponent(ctx, spaceID, payload(local))
			return err
		},
		update: func(ctx context.Context, local, remote domain.Component) error {
			local.ID = remote.ID
			_, err := s.client.UpdateComponent(ctx, spaceID, payload(local))
			return err
		},
		forceUpdate: opts.SourceOfTruth,
		dryRun:      opts.DryRun,
	}
	return classify(ctx, items, remote, ops, emitter(onProgress)), nil
}

// SyncDatasources reconciles local datasources, optionally including their
// name/value entries.
func (s *SyncerService) SyncDatasources(ctx context.Context, spaceID int64, items []domain.Datasource, opts driving.DatasourceSyncOptions, onProgress driving.SyncProgressFunc) (domain.SyncOutcome, error) {
	if spaceID == 0 {
		return domain.SyncOutcome{}, domain.ErrMissingSpace
	}
	remote, err := s.client.ListDatasources(ctx, spaceID)
	if err != nil {
		return domain.SyncOutcome{}, fmt.Errorf("list datasources: %w", err)
	}
	logger.Debug("sync datasources: %d local, %d remote", len(items), len(remote))

	ops := resourceOps[domain.Datasource]{
		name:       func(d domain.Datasource) string { return d.Name },
		equivalent: domain.Datasource.EquivalentTo,
		create: func(ctx context.Context, local domain.Datasource) error {
			created, err := s.client.CreateDatasource(ctx, spaceID, local)
			if err != nil {
				return err
			}
			if opts.SyncEntries {
				return s.syncEntries(ctx, spaceID, created.ID, local.Entries)
			}
			return nil
		},
		update: func(ctx context.Context, local, remote domain.Datasource) error {
			local.ID = remote.ID
			if _, err := s.client.UpdateDatasource(ctx, spaceID, local); err != nil {
				return err
			}
			if opts.SyncEntries {
				return s.syncEntries(ctx, spaceID, remote.ID, local.Entries)
			}
			return nil
		},
		dryRun: opts.DryRun,
	}
	return classify(ctx, items, remote, ops, emitter(onProgress)), nil
}

// syncEntries reconciles datasource entries by name, create-or-update.
func (s *SyncerService) syncEntries(ctx context.Context, spaceID, datasourceID int64, entries []domain.DatasourceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	remote, err := s.client.ListDatasourceEntries(ctx, spaceID, datasourceID)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	index := make(map[string]domain.DatasourceEntry, len(remote))
	for _, e := range remote {
		index[e.Name] = e
	}

	for _, entry := range entries {
		existing, ok := index[entry.Name]
		if !ok {
			if _, err := s.client.CreateDatasourceEntry(ctx, spaceID, datasourceID, entry); err != nil {
				return fmt.Errorf("create entry %q: %w", entry.Name, err)
			}
			continue
		}
		if existing.Value == entry.Value {
			continue
		}
		entry.ID = existing.ID
		if _, err := s.client.UpdateDatasourceEntry(ctx, spaceID, datasourceID, entry); err != nil {
			return fmt.Errorf("update entry %q: %w", entry.Name, err)
		}
	}
	return nil
}

// SyncRoles reconciles local space roles.
func (s *SyncerService) SyncRoles(ctx context.Context, spaceID int64, items []domain.Role, opts driving.SyncOptions, onProgress driving.SyncProgressFunc) (domain.SyncOutcome, error) {
	if spaceID == 0 {
		return domain.SyncOutcome{}, domain.ErrMissingSpace
	}
	remote, err := s.client.ListRoles(ctx, spaceID)
	if err != nil {
		return domain.SyncOutcome{}, fmt.Errorf("list roles: %w", err)
	}
	logger.Debug("sync roles: %d local, %d remote", len(items), len(remote))

	ops := resourceOps[domain.Role]{
		name:       func(r domain.Role) string { return r.Name },
		equivalent: domain.Role.EquivalentTo,
		create: func(ctx context.Context, local domain.Role) error {
			_, err := s.client.CreateRole(ctx, spaceID, local)
			return err
		},
		update: func(ctx context.Context, local, remote domain.Role) error {
			local.ID = remote.ID
			_, err := s.client.UpdateRole(ctx, spaceID, local)
			return err
		},
		dryRun: opts.DryRun,
	}
	return classify(ctx, items, remote, ops, emitter(onProgress)), nil
}

// SyncPlugins reconciles local field plugins.
func (s *SyncerService) SyncPlugins(ctx context.Context, spaceID int64, items []domain.Plugin, opts driving.SyncOptions, onProgress driving.SyncProgressFunc) (domain.SyncOutcome, error) {
	if spaceID == 0 {
		return domain.SyncOutcome{}, domain.ErrMissingSpace
	}
	remote, err := s.client.ListPlugins(ctx, spaceID)
	if err != nil {
		return domain.SyncOutcome{}, fmt.Errorf("list plugins: %w", err)
	}
	logger.Debug("sync plugins: %d local, %d remote", len(items), len(remote))

	ops := resourceOps[domain.Plugin]{
		name:       func(p domain.Plugin) string { return p.Name },
		equivalent: domain.Plugin.EquivalentTo,
		create: func(ctx context.Context, local domain.Plugin) error {
			_, err := s.client.CreatePlugin(ctx, spaceID, local)
			return err
		},
		update: func(ctx context.Context, local, remote domain.Plugin) error {
			local.ID = remote.ID
			_, err := s.client.UpdatePlugin(ctx, spaceID, local)
			return err
		},
		dryRun: opts.DryRun,
	}
	return classify(ctx, items, remote, ops, emitter(onProgress)), nil
}
