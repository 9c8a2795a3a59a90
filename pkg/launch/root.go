package launch

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// osExecutable is swapped in tests.
var osExecutable = os.Executable

// LauncherRoot returns the directory holding the launcher executable,
// with symlinks resolved. The virtual environment and the target
// program are expected to live next to the real file, not next to
// whatever symlink the launcher was invoked through.
func LauncherRoot() (string, error) {
	executable, err := osExecutable()
	if err != nil {
		return "", errors.Wrap(err, "failed to locate the launcher executable")
	}

	resolved, err := filepath.EvalSymlinks(executable)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve the launcher path %s", executable)
	}

	return filepath.Dir(resolved), nil
}
