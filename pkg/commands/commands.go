// Package commands implements uvw's operations on top of the registry.
//
// Each operation takes an options struct and returns a result, leaving
// printing to the CLI. Interactive decisions go through ui.Confirmer and
// ui.Picker so every operation can run unattended in tests.
package commands

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/logging"
	"github.com/arthur-debert/uvw/pkg/ui"
)

// logger is resolved per call so it picks up the CLI's logging setup.
func logger() zerolog.Logger {
	return logging.GetLogger("core.commands")
}

// confirm asks c unless yes is set. A nil confirmer declines.
func confirm(c ui.Confirmer, yes bool, message string) (bool, error) {
	if yes {
		return true, nil
	}
	if c == nil {
		return false, nil
	}
	ok, err := c.Confirm(message)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "confirmation failed")
	}
	return ok, nil
}
