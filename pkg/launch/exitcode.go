package launch

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Shell-convention exit codes for a failed handoff, matching what a
// POSIX shell reports when an exec'd command cannot run.
const (
	ExitInternalError = 1
	ExitNotExecutable = 126
	ExitNotFound      = 127
)

// ExitCodeFromError maps an execution failure to the status the
// launcher should exit with. A *exec.ExitError means the target program
// actually ran; its exit code is propagated untouched.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return exitCodeForSpawnError(err)
}

func exitCodeForSpawnError(err error) int {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return ExitNotFound
	}

	if errors.Is(err, os.ErrPermission) {
		return ExitNotExecutable
	}

	return ExitInternalError
}
