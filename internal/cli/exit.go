package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/arthur-debert/uvw/pkg/errors"
	"github.com/arthur-debert/uvw/pkg/style"
)

// Report prints err for the user and returns the process exit code.
// An empty selection is a notice, not a failure. A failed child command
// passes its own exit code through.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	if errors.IsErrorCode(err, errors.ErrNoSelection) {
		_, _ = fmt.Fprintln(w, MsgNoSelection)
		return 0
	}

	msg := fmt.Sprintf("Error: %v", err)
	if styled(w) {
		msg = style.ErrorStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(w, msg)

	var e *errors.Error
	if stderrors.As(err, &e) && e.Code == errors.ErrCommandFailed {
		if code, ok := e.Details["exitCode"].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}
