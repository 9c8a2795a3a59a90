// The pylaunch binary resolves a Python interpreter and hands the
// process over to the main.py sitting next to it. It takes no flags of
// its own; everything after the program name goes to the target
// untouched, and the target's exit code becomes the launcher's.
// Diagnostics live in the separate pylaunch-doctor binary.
package main

import (
	"fmt"
	"os"

	"github.com/pylaunch/pylaunch/pkg/launch"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	root, err := launch.LauncherRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(launch.ExitInternalError)
	}

	launcher := launch.New(afero.NewOsFs(), zap.NewNop().Sugar(), launch.Options{})

	code, err := launcher.Run(root, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	os.Exit(code)
}
