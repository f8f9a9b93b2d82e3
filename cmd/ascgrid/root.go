package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ghettovoice/ascgrid/internal/log"
)

// app holds the state shared by all subcommands.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string
	colorMode string

	cfg config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: log.Noop}

	cmd := &cobra.Command{
		Use:               "ascgrid",
		Short:             "ESRI ASCII grid toolkit",
		Long:              "ascgrid checks and rewrites ESRI ASCII grid files",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgPath, "config", "", "config file (default: nearest "+configName+")")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	flags.StringVar(&a.logFormat, "log-format", "console", "log format (console|dev|json|text)")
	flags.StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")

	cmd.AddCommand(newRewriteCmd(a), newInfoCmd(a), newCheckCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	flags := cmd.Flags()
	if !flags.Changed("log-level") && cfg.Log.Level != "" {
		a.logLevel = cfg.Log.Level
	}
	if !flags.Changed("log-format") && cfg.Log.Format != "" {
		a.logFormat = cfg.Log.Format
	}
	lvl, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log = log.New(cmd.ErrOrStderr(), a.logFormat, lvl)

	switch a.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color value %q", a.colorMode)
	}

	if cfg.path != "" {
		a.log.Debug("config loaded", slog.String("path", cfg.path))
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
