package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pylaunch/pylaunch/pkg/launch"
	"github.com/pylaunch/pylaunch/pkg/logger"
	"github.com/urfave/cli/v2"
)

func Resolve(isDebug *bool) *cli.Command {
	return &cli.Command{
		Name:  "resolve",
		Usage: "print the interpreter the launcher would pick, nothing else, so scripts can reuse it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "the launcher root to resolve against, defaults to the current directory",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "the output type, possible values are: plain, json",
			},
		},
		Action: func(c *cli.Context) error {
			r := ResolveCommand{
				logger: makeLogger(*isDebug),
			}

			return r.Run(c.String("root"), strings.ToLower(c.String("output")))
		},
	}
}

type ResolveCommand struct {
	logger logger.Logger
}

func (r *ResolveCommand) Run(root, output string) error {
	defer RecoverFromPanic()

	root, err := resolveRoot(fs, root)
	if err != nil {
		printError(err, output, "Failed to resolve the launcher root")
		return cli.Exit("", 1)
	}

	resolver := launch.NewResolver(fs, r.logger, launch.Options{})
	selected := resolver.Resolve(root)

	if output == "json" {
		js, err := json.Marshal(selected)
		if err != nil {
			printErrorJSON(err)
			return err
		}

		fmt.Println(string(js))
		return nil
	}

	fmt.Println(selected.Command)
	return nil
}
