// Package driving defines the interfaces through which external actors
// (CLI today, other frontends later) drive the engine: replication, sync
// classification, discovery and settings.
package driving
