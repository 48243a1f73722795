// Package memory provides the low-level primitives for object reuse
// and safe reclamation: a typed pool, a lock-free retire ring, and
// global epoch tracking. Orders leaving the book are parked in the
// ring until no snapshot reader can still observe them, then returned
// to the pool.
//
// The package is dependency-free and knows nothing about orders.
package memory
