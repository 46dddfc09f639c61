package launcher

import (
	"errors"
	"fmt"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
)

// ErrAlreadyStarted is returned by Start on a launcher that has already run.
var ErrAlreadyStarted = errors.New(messages.LauncherAlreadyStarted)

// SpawnError reports that the server process could not be created.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf(messages.LauncherSpawnErrorFmt, e.Command, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError reports a non-zero server exit. The launcher exits with the same code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(messages.LauncherExitErrorFmt, e.Code)
}

// ExitCode returns the server's exit code.
func (e *ExitError) ExitCode() int { return e.Code }
