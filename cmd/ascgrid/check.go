package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/ascgrid"
	"github.com/ghettovoice/ascgrid/internal/errorutil"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate grid files",
		Long:  "Check parses every FILE and streams its body, reporting all invalid grids.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(cmd, args)
		},
	}
}

func (a *app) check(cmd *cobra.Command, files []string) error {
	out := cmd.OutOrStdout()

	var errs []error
	for _, name := range files {
		if err := a.checkFile(name); err != nil {
			failColor.Fprint(out, "FAIL")
			fmt.Fprintf(out, " %s: %v\n", name, err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		okColor.Fprint(out, "ok")
		fmt.Fprintf(out, "   %s\n", name)
	}
	if len(errs) == 0 {
		return nil
	}
	return errorutil.JoinPrefix(fmt.Sprintf("%d of %d grids invalid:", len(errs), len(files)), errs...)
}

func (a *app) checkFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	g, err := ascgrid.Parse(f, &ascgrid.Options{Log: a.log.With(slog.String("input", name))})
	if err != nil {
		return err
	}
	return g.Write(io.Discard, nil)
}
