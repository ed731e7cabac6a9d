// Package services implements the engine behind the driving ports: story
// replication between spaces, sync classification of local resource
// definitions, and filesystem discovery of definition files.
//
// Services own no shared mutable state across operations; every call keeps
// its counters, id-maps and error lists to itself. Two calls against the
// same space are not serialised - remote writes may interleave.
package services
