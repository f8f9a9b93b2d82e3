package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/ascgrid"
	"github.com/ghettovoice/ascgrid/scan"
)

var (
	fieldColor = color.New(color.FgCyan)
	labelColor = color.New(color.FgYellow)
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info IN",
		Short: "Print the grid header and value statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.info(cmd, args[0])
		},
	}
}

func (a *app) info(cmd *cobra.Command, in string) error {
	src, closeSrc, err := openInput(cmd, in)
	if err != nil {
		return err
	}
	defer closeSrc()

	g, err := ascgrid.Parse(src, &ascgrid.Options{Log: a.log.With(slog.String("input", in))})
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	sum := new(scan.Summary)
	if tok, ok := g.NoData(); ok {
		sum.NoData = tok.Text()
	}
	if err := g.Write(io.Discard, sum); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	out := cmd.OutOrStdout()
	hdr := g.Header()
	for tok := range hdr.Tokens() {
		fieldColor.Fprintf(out, "%-13s", tok.Kind())
		fmt.Fprintf(out, " %s\n", tok.Text())
	}
	fmt.Fprintln(out)
	printStat(out, "rows", sum.Rows)
	printStat(out, "cells", sum.Cells)
	printStat(out, "nodata", sum.NoDatas)
	if sum.Invalid > 0 {
		printStat(out, "invalid", sum.Invalid)
	}
	if sum.Values() > 0 {
		printStat(out, "min", sum.Min)
		printStat(out, "max", sum.Max)
		printStat(out, "mean", sum.Mean)
	}
	return nil
}

func printStat(w io.Writer, label string, v any) {
	labelColor.Fprintf(w, "%-13s", label)
	fmt.Fprintf(w, " %v\n", v)
}
