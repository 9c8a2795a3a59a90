//go:build windows
// +build windows

package launch

import (
	"os"
	"os/exec"
	"os/signal"

	"github.com/pkg/errors"
)

// executeInterpreter runs the interpreter as a child process with
// inherited stdio and blocks until it exits. Windows has no execve
// handoff, so the launcher stays alive to report the child's exit
// code. Ctrl-C reaches the whole console group including the child, so
// the launcher ignores it and lets the interpreter decide when to stop.
func executeInterpreter(command string, argv, env []string) (int, error) {
	cmd := exec.Command(command, argv[1:]...) //nolint:gosec
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// the interpreter ran and finished; its status is the
			// result, not a launcher failure
			return exitErr.ExitCode(), nil
		}

		return exitCodeForSpawnError(err), errors.Wrapf(err, "failed to execute '%s'", command)
	}

	return 0, nil
}
