// Package driven defines the interfaces the core services depend on:
// the remote content management API, local settings persistence and the
// external process runner. Adapters implement these interfaces.
package driven
