package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pylaunch/pylaunch/cmd"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = ""
)

func main() {
	isDebug := false
	color.NoColor = false

	versionCommand := cmd.VersionCmd(commit)

	cli.VersionPrinter = func(cCtx *cli.Context) {
		err := versionCommand.Action(cCtx)
		if err != nil {
			panic(err)
		}
	}

	app := &cli.App{
		Name:     "pylaunch-doctor",
		Version:  version,
		Usage:    "diagnose what the pylaunch launcher would do on this machine",
		Compiled: time.Now(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Value:       false,
				Usage:       "show debug information",
				Destination: &isDebug,
			},
		},
		Commands: []*cli.Command{
			cmd.Inspect(&isDebug),
			cmd.Resolve(&isDebug),
			versionCommand,
		},
	}

	_ = app.Run(os.Args)
}
