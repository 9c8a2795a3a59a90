package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pylaunch/pylaunch/pkg/launch"
	"github.com/pylaunch/pylaunch/pkg/logger"
	"github.com/pylaunch/pylaunch/pkg/path"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func Inspect(isDebug *bool) *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "show every interpreter candidate and whether the launcher could use it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "the launcher root to inspect, defaults to the current directory",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "the output type, possible values are: plain, json",
			},
		},
		Action: func(c *cli.Context) error {
			r := InspectCommand{
				logger: makeLogger(*isDebug),
			}

			return r.Run(c.Context, c.String("root"), strings.ToLower(c.String("output")))
		},
	}
}

// InspectReport is everything the doctor learned about one launcher
// root, shaped to serve both the table and the JSON output.
type InspectReport struct {
	Root     string               `json:"root"`
	Target   TargetReport         `json:"target"`
	Selected launch.Candidate     `json:"selected"`
	Chain    []launch.ProbeResult `json:"chain"`
}

type TargetReport struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

type InspectCommand struct {
	logger logger.Logger
}

func (r *InspectCommand) Run(ctx context.Context, root, output string) error {
	defer RecoverFromPanic()

	root, err := resolveRoot(fs, root)
	if err != nil {
		printError(err, output, "Failed to resolve the launcher root")
		return cli.Exit("", 1)
	}

	report := r.buildReport(ctx, root)

	if output == "json" {
		js, err := json.Marshal(report)
		if err != nil {
			printErrorJSON(err)
			return err
		}

		fmt.Println(string(js))
		return nil
	}

	renderInspectReport(os.Stdout, report)
	return nil
}

func (r *InspectCommand) buildReport(ctx context.Context, root string) *InspectReport {
	resolver := launch.NewResolver(fs, r.logger, launch.Options{})
	prober := launch.NewProber(fs, r.logger)

	targetPath := filepath.Join(root, launch.DefaultTargetName)

	return &InspectReport{
		Root: root,
		Target: TargetReport{
			Path:   targetPath,
			Exists: path.FileExists(fs, targetPath),
		},
		Selected: resolver.Resolve(root),
		Chain:    prober.ProbeAll(ctx, resolver.Candidates(root)),
	}
}

func renderInspectReport(w io.Writer, report *InspectReport) {
	infoPrinter.Fprintln(w, "Launcher root: "+report.Root)
	if report.Target.Exists {
		successPrinter.Fprintln(w, "Target: "+report.Target.Path)
	} else {
		errorPrinter.Fprintln(w, "Target missing: "+report.Target.Path)
	}
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Kind", "Command", "Resolved", "Version", "Status"})
	rows := lo.Map(report.Chain, func(res launch.ProbeResult, i int) table.Row {
		return table.Row{i + 1, string(res.Candidate.Kind), res.Candidate.Command, res.Resolved, res.Version, inspectStatus(res, report.Selected)}
	})
	for _, row := range rows {
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleLight)
	t.Render()

	selected, ok := lo.Find(report.Chain, func(res launch.ProbeResult) bool {
		return res.Candidate == report.Selected
	})
	if ok && !selected.Available {
		warningPrinter.Fprintln(w, "The launcher would try '"+report.Selected.Command+"', but it does not appear to be runnable.")
	}

	fmt.Fprintln(w, faint("Candidates are tried top to bottom; the selected row is what the launcher hands off to."))
}

func inspectStatus(res launch.ProbeResult, selected launch.Candidate) string {
	status := "missing"
	if res.Available {
		status = "available"
	}
	if res.Candidate == selected {
		status += ", selected"
	}

	return status
}
