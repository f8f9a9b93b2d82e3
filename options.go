package ascgrid

import (
	"log/slog"

	"github.com/ghettovoice/ascgrid/internal/log"
)

// Options are the options for [Parse].
// The zero value and nil are valid.
type Options struct {
	// Log is the logger.
	// If nil, logging is disabled.
	Log *slog.Logger
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}
