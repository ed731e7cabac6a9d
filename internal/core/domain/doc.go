// Package domain contains the core types of the replication and sync
// engine: stories and their tree form, resource definitions, discovery
// results and the progress/outcome values streamed to callers.
//
// Everything in this package is pure data plus pure functions. Network and
// filesystem access live in the adapters.
package domain
