package launch

import (
	"os/exec"
	"path/filepath"

	"github.com/pylaunch/pylaunch/pkg/logger"
	"github.com/pylaunch/pylaunch/pkg/path"
	"github.com/spf13/afero"
)

// CandidateKind tells which rung of the fallback chain a candidate sits on.
type CandidateKind string

const (
	// KindVirtualEnv is the interpreter inside the virtual environment
	// next to the launcher.
	KindVirtualEnv CandidateKind = "virtualenv"
	// KindDispatcher is the generically-named selection helper resolved
	// through PATH, e.g. the `py` launcher on Windows.
	KindDispatcher CandidateKind = "dispatcher"
	// KindFallback is the bare interpreter name, used without any
	// existence check.
	KindFallback CandidateKind = "fallback"
)

// Candidate is one entry of the interpreter fallback chain. Command is
// an absolute file path for the virtualenv kind and a bare program name
// for the other two.
type Candidate struct {
	Kind    CandidateKind `json:"kind"`
	Command string        `json:"command"`
}

type Resolver struct {
	fs       afero.Fs
	lookPath func(file string) (string, error)
	logger   logger.Logger
	opts     Options
}

func NewResolver(fs afero.Fs, log logger.Logger, opts Options) *Resolver {
	return &Resolver{
		fs:       fs,
		lookPath: exec.LookPath,
		logger:   log,
		opts:     opts.withDefaults(),
	}
}

// Candidates returns the full fallback chain for the given launcher
// root in priority order, regardless of what actually exists on the
// host.
func (r *Resolver) Candidates(root string) []Candidate {
	return []Candidate{
		{
			Kind:    KindVirtualEnv,
			Command: filepath.Join(root, r.opts.VenvDir, VirtualEnvBinaryFolder, VirtualEnvPythonBinary),
		},
		{
			Kind:    KindDispatcher,
			Command: DispatcherExecutable,
		},
		{
			Kind:    KindFallback,
			Command: DefaultPythonExecutable,
		},
	}
}

// Resolve picks the interpreter the launcher will hand off to: the
// virtualenv interpreter if its file exists, otherwise the dispatcher
// if PATH lookup finds it, otherwise the bare interpreter name with no
// check at all. Resolution itself never fails; an unusable final pick
// surfaces from the execution attempt instead.
func (r *Resolver) Resolve(root string) Candidate {
	candidates := r.Candidates(root)

	venv := candidates[0]
	if path.FileExists(r.fs, venv.Command) {
		r.logger.Debugw("using the virtualenv interpreter", "path", venv.Command)
		return venv
	}
	r.logger.Debugf("no virtualenv interpreter at '%s'", venv.Command)

	dispatcher := candidates[1]
	if resolved, err := r.lookPath(dispatcher.Command); err == nil {
		r.logger.Debugw("using the dispatcher found on PATH", "command", dispatcher.Command, "resolved", resolved)
		return dispatcher
	}
	r.logger.Debugf("dispatcher '%s' not found on PATH, falling back to '%s'", dispatcher.Command, candidates[2].Command)

	return candidates[2]
}
