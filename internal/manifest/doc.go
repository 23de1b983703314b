// Package manifest maintains the integrity ledger between documentation
// sources and generated artifacts. A build hashes every source and output
// into a single Manifest record; a later drift check re-hashes the current
// tree against the persisted record and classifies every divergence.
package manifest
