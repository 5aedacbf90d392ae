// Package testutil provides utilities for testing uvw components.
//
// Key components:
//   - VenvTree: on-disk fixture of projects with and without environments
//   - filesystem helpers: CreateFile, CreateDir, CreateSymlink and assertions
//   - fakes: FakeRunner, FakeConfirmer and FakePicker for collaborators
//
// Usage guidelines:
//   - Fixtures live in t.TempDir() on the real filesystem, because the
//     registry is made of symlinks and must be exercised with real ones
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
