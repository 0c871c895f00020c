package printers

import (
	"io"
	"os"
	"time"
)

// settings contains common display options shared by all printers
type settings struct {
	ShowTimestamp bool
	ShowEmptyOnly bool
	Out           io.Writer
	Err           io.Writer
	Now           func() time.Time
}

func defaultSettings() settings {
	return settings{
		Out: os.Stdout,
		Err: os.Stderr,
		Now: time.Now,
	}
}

// timestamp returns the formatted current time followed by a space,
// or an empty string when timestamps are disabled.
func (s *settings) timestamp() string {
	if !s.ShowTimestamp {
		return ""
	}

	return s.Now().Format(TimeFormat) + " "
}

// skip reports whether o is filtered out by WithEmptyOnly.
func (s *settings) skip(o Optional) bool {
	return s.ShowEmptyOnly && o.IsDefined()
}

type hasSettings interface {
	settings() *settings
}

// WithTimestamp enables timestamp display in printer output
func WithTimestamp[T hasSettings]() func(T) {
	return func(p T) {
		p.settings().ShowTimestamp = true
	}
}

// WithEmptyOnly configures the printer to only show options that are None
func WithEmptyOnly[T hasSettings]() func(T) {
	return func(p T) {
		p.settings().ShowEmptyOnly = true
	}
}

// WithWriter sends regular output to w instead of stdout
func WithWriter[T hasSettings](w io.Writer) func(T) {
	return func(p T) {
		p.settings().Out = w
	}
}

// WithErrorWriter sends error output to w instead of stderr
func WithErrorWriter[T hasSettings](w io.Writer) func(T) {
	return func(p T) {
		p.settings().Err = w
	}
}

// WithClock replaces the time source used for timestamps
func WithClock[T hasSettings](now func() time.Time) func(T) {
	return func(p T) {
		p.settings().Now = now
	}
}
