// Package testutil provides helpers shared by solver and CLI tests.
//
// Fixtures live in each package's testdata directory and are loaded through
// the same input.Loader the CLI uses. In-memory filesystems come from afero so
// config and CLI tests never touch the real home directory.
package testutil
