package launch

import (
	"os"
	"path/filepath"

	"github.com/pylaunch/pylaunch/pkg/logger"
	"github.com/spf13/afero"
)

const (
	DefaultVenvDir    = ".venv"
	DefaultTargetName = "main.py"
)

// Options carries the launcher's conventions. The zero value means the
// defaults the shipped binaries use.
type Options struct {
	// VenvDir is the name of the virtual environment directory expected
	// next to the launcher.
	VenvDir string
	// TargetName is the file name of the target program expected next
	// to the launcher.
	TargetName string
}

func (o Options) withDefaults() Options {
	if o.VenvDir == "" {
		o.VenvDir = DefaultVenvDir
	}
	if o.TargetName == "" {
		o.TargetName = DefaultTargetName
	}

	return o
}

// Launcher resolves an interpreter and hands the process over to the
// target program, forwarding the caller's arguments untouched.
type Launcher struct {
	resolver *Resolver
	logger   logger.Logger
	opts     Options
	environ  func() []string
	execute  func(command string, argv, env []string) (int, error)
}

func New(fs afero.Fs, log logger.Logger, opts Options) *Launcher {
	opts = opts.withDefaults()

	return &Launcher{
		resolver: NewResolver(fs, log, opts),
		logger:   log,
		opts:     opts,
		environ:  os.Environ,
		execute:  executeInterpreter,
	}
}

// Argv builds the full argument vector handed to the interpreter: its
// own invocation, the absolute target path, then the caller's arguments
// in their original order.
func (l *Launcher) Argv(interpreter, root string, args []string) []string {
	argv := make([]string, 0, len(args)+2)
	argv = append(argv, interpreter, filepath.Join(root, l.opts.TargetName))

	return append(argv, args...)
}

// Run resolves the interpreter for the given root and executes the
// target program with the forwarded arguments. On POSIX a successful
// run never returns, the launcher process is replaced by the
// interpreter. On Windows it blocks until the child exits and returns
// the child's exit code. When err is non-nil the returned code is the
// shell-convention status the launcher should exit with.
func (l *Launcher) Run(root string, args []string) (int, error) {
	interpreter := l.resolver.Resolve(root)
	argv := l.Argv(interpreter.Command, root, args)

	l.logger.Debugw("handing off to the interpreter", "command", interpreter.Command, "argv", argv)

	return l.execute(interpreter.Command, argv, l.environ())
}
