package path

import (
	"github.com/spf13/afero"
)

// FileExists reports whether a regular file lives at the given path.
// Directories do not count: the interpreter probe must never select a
// directory that happens to carry the interpreter's name.
func FileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

func DirExists(fs afero.Fs, searchDir string) bool {
	res, err := afero.DirExists(fs, searchDir)
	return err == nil && res
}
