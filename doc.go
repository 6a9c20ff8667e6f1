// Package idtheory generates universally unique identifiers in several
// formats: name-based UUIDs (versions 3 and 5), random UUIDs (version 4),
// lexicographically sortable ULIDs, and 24-character object identifiers
// with an optional checksum-prefixed variant.
//
// A Generator carries the small amount of process-scoped state the object
// identifier format requires (machine id, process id, rolling counter) and
// the injected collaborators (Clock, Rand, logger) that make output
// reproducible in tests. Package-level convenience functions delegate to a
// shared default Generator.
package idtheory
