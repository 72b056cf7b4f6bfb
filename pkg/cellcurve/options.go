// Package cellcurve converts battery test-report spreadsheets into identity,
// summary capacity and per-phase capacity curves.
package cellcurve

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Mode represents the extraction mode.
type Mode string

const (
	// ModeSummary extracts serial number and discharge capacity only.
	ModeSummary Mode = "summary"
	// ModeFull also segments the record sheet into phase curves.
	ModeFull Mode = "full"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeSummary, ModeFull:
		return Mode(s), true
	default:
		return "", false
	}
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (summary, full).
	Mode Mode
	// Concurrency bounds parallel files in a batch.
	// If zero or negative, defaults to GOMAXPROCS.
	Concurrency int
	// Logger receives progress and per-file failures.
	// If nil, logging is discarded.
	Logger logrus.FieldLogger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeFull,
	}
}

// ShouldSegment returns whether phase curves are extracted.
func (o Options) ShouldSegment() bool {
	return o.Mode != ModeSummary
}

func (o Options) workers() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
