// Package snapshot provides consistent, read-only captures of the
// in-memory book. Writers serialize the resting orders to disk so the
// entry WAL can be truncated; readers enter and exit read epochs so
// snapshots taken next to matching stay consistent without locks.
//
// Snapshot is intentionally decoupled from matching and the WALs. It
// only coordinates read visibility and the on-disk capture format.
package snapshot
