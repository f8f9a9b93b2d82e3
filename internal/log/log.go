// Package log provides logging utilities.
package log

//go:generate go tool errtrace -w .

import (
	"context"
	"io"
	"log/slog"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/ascgrid/header"
	"github.com/ghettovoice/ascgrid/internal/errorutil"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(tok header.Token) slog.Value {
		return slog.GroupValue(
			slog.String("kind", tok.Kind().String()),
			slog.String("text", tok.Text()),
		)
	}),
)

// New creates a logger writing to w in the given format.
//
// Supported formats are "console" (the default), "dev", "json" and "text".
func New(w io.Writer, format string, level slog.Leveler) *slog.Logger {
	var h slog.Handler
	switch format {
	case "dev":
		h = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     level,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		})
	case "json":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case "text":
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	default:
		h = console.NewHandler(w, &console.HandlerOptions{
			AddSource:  level.Level() <= slog.LevelDebug,
			Level:      level,
			TimeFormat: time.RFC3339Nano,
		})
	}
	return slog.New(newHandler(h))
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	return lvl, nil
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type calcValue struct{ fn func() any }

func (v calcValue) LogValue() slog.Value {
	cv := v.fn()
	switch cv := cv.(type) {
	case slog.Value:
		return cv
	default:
		return slog.AnyValue(cv)
	}
}

// CalcValue returns a value logger that computes a value using a fn.
func CalcValue(fn func() any) slog.LogValuer { return calcValue{fn} }
