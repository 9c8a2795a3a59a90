package launch

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pylaunch/pylaunch/pkg/logger"
	"github.com/pylaunch/pylaunch/pkg/path"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const versionProbeTimeout = 3 * time.Second

// ProbeResult describes whether a candidate interpreter actually works
// on this machine, with the details a diagnostics report needs.
type ProbeResult struct {
	Candidate Candidate `json:"candidate"`
	Available bool      `json:"available"`
	Resolved  string    `json:"resolved,omitempty"`
	Version   string    `json:"version,omitempty"`
}

// Prober checks candidates the same way the launcher picks them, then
// goes one step further and asks each one for its version.
type Prober struct {
	fs         afero.Fs
	lookPath   func(file string) (string, error)
	runVersion func(ctx context.Context, command string) (string, error)
	logger     logger.Logger
}

func NewProber(fs afero.Fs, log logger.Logger) *Prober {
	return &Prober{
		fs:         fs,
		lookPath:   exec.LookPath,
		runVersion: runVersionCommand,
		logger:     log,
	}
}

// Probe reports availability for a single candidate. A missing
// interpreter is a regular result, not an error; a present interpreter
// that fails the version query is still reported as available.
func (p *Prober) Probe(ctx context.Context, candidate Candidate) ProbeResult {
	result := ProbeResult{Candidate: candidate}

	if candidate.Kind == KindVirtualEnv {
		if !path.FileExists(p.fs, candidate.Command) {
			p.logger.Debugf("virtualenv interpreter '%s' does not exist", candidate.Command)
			return result
		}

		result.Available = true
		result.Resolved = candidate.Command
	} else {
		resolved, err := p.lookPath(candidate.Command)
		if err != nil {
			p.logger.Debugf("'%s' was not found in PATH", candidate.Command)
			return result
		}

		result.Available = true
		result.Resolved = resolved
	}

	version, err := p.runVersion(ctx, result.Resolved)
	if err != nil {
		p.logger.Warnf("failed to query the version of '%s': %v", result.Resolved, err)
		return result
	}
	result.Version = version

	return result
}

// ProbeAll probes every candidate concurrently and returns the results
// in the order of the given chain.
func (p *Prober) ProbeAll(ctx context.Context, candidates []Candidate) []ProbeResult {
	results := make([]ProbeResult, len(candidates))

	group, ctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		group.Go(func() error {
			results[i] = p.Probe(ctx, candidate)
			return nil
		})
	}
	_ = group.Wait()

	return results
}

// runVersionCommand asks an interpreter for its version string.
// CombinedOutput is intentional, older CPython releases print the
// version banner to stderr.
func runVersionCommand(ctx context.Context, command string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, command, "--version").CombinedOutput() //nolint:gosec
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(output)), nil
}
