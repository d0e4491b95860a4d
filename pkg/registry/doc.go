// Package registry provides a generic, thread-safe registry keyed by any
// ordered type. Puzzle solvers register themselves into one from init().
package registry
