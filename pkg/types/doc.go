// Package types defines the interfaces shared across uvw packages.
package types
