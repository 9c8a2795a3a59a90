//go:build linux || darwin

package launch

import (
	"os/exec"
	"strings"
	"syscall"

	"github.com/pkg/errors"
)

// execFunc is syscall.Exec in production; tests swap it to observe the
// handoff without replacing the test process.
var execFunc = syscall.Exec

// executeInterpreter replaces the launcher process with the interpreter
// via execve, so exit status and signal delivery belong to the target
// program from here on. It only ever returns on failure. Bare program
// names are resolved through PATH first since execve needs a path; for
// the unchecked fallback candidate that lookup is the execution attempt
// its failure surfaces from.
func executeInterpreter(command string, argv, env []string) (int, error) {
	pathToInterpreter := command
	if !strings.ContainsRune(command, '/') {
		resolved, err := exec.LookPath(command)
		if err != nil {
			return exitCodeForSpawnError(err), errors.Wrapf(err, "failed to locate '%s'", command)
		}
		pathToInterpreter = resolved
	}

	if err := execFunc(pathToInterpreter, argv, env); err != nil {
		return exitCodeForSpawnError(err), errors.Wrapf(err, "failed to execute '%s'", pathToInterpreter)
	}

	return 0, nil
}
