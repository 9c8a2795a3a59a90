package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/pylaunch/pylaunch/pkg/path"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func makeLogger(isDebug bool) *zap.SugaredLogger {
	if !isDebug {
		return zap.NewNop().Sugar()
	}

	return zap.Must(zap.NewDevelopment()).Sugar()
}

// resolveRoot turns the --root flag into an absolute launcher root,
// defaulting to the current directory when the flag was not given.
func resolveRoot(fs afero.Fs, root string) (string, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to determine the current directory")
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve the root path %s", root)
	}

	if !path.DirExists(fs, abs) {
		return "", errors.Errorf("the root directory '%s' does not exist", abs)
	}

	return abs, nil
}

func RecoverFromPanic() {
	if err := recover(); err != nil {
		log.Println("=======================================")
		log.Println("pylaunch-doctor encountered an unexpected error, please report the issue.")
		log.Println(err)
		log.Println("=======================================")
		b := bufio.NewScanner(bytes.NewBuffer(debug.Stack()))
		for b.Scan() {
			log.Println(b.Text())
		}
		os.Exit(1)
	}
}

func printErrorJSON(err error) {
	errResponse := ErrorResponse{
		Error: errors.New("something went wrong").Error(),
	}
	if err != nil {
		errResponse.Error = err.Error()
	}

	js, err := json.Marshal(errResponse)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(js))
}

func printError(err error, output string, message string) {
	if output == "json" {
		printErrorJSON(err)
	} else {
		errorPrinter.Printf("%s: %v\n", message, err)
	}
}
