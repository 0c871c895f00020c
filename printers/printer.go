// Package printers contains the logic for printing options
package printers

import (
	"github.com/pouriyajamshidi/option"
)

// TimeFormat is the layout of timestamps in printer output.
const TimeFormat = "2006-01-02 15:04:05"

// Optional is the type-erased view of an option.Option that printers work with.
// Every option.Option[A] satisfies it.
type Optional interface {
	IsDefined() bool
	String() string
	MarshalJSON() ([]byte, error)
}

// Printer outputs labelled options and diagnostic messages.
type Printer interface {
	// PrintOption prints o under label.
	PrintOption(label string, o Optional)
	// PrintInfo prints an informational message.
	PrintInfo(format string, args ...any)
	// PrintError prints an error message.
	PrintError(format string, args ...any)
	// Done flushes and releases whatever the printer holds.
	Done() error
}

var (
	_ Optional = option.Option[int]{}

	_ Printer = (*PlainPrinter)(nil)
	_ Printer = (*ColorPrinter)(nil)
	_ Printer = (*JSONPrinter)(nil)
	_ Printer = (*CSVPrinter)(nil)
	_ Printer = (*DatabasePrinter)(nil)
)

// Trace prints o with p and returns o unchanged, so it can sit in the middle of a chain:
//
//	port := printers.Trace(p, "port", option.Of(cfg.Port)).GetOrReturn(443)
func Trace[A any](p Printer, label string, o option.Option[A]) option.Option[A] {
	p.PrintOption(label, o)
	return o
}

const (
	stateSome = "some"
	stateNone = "none"
)

func state(o Optional) string {
	if o.IsDefined() {
		return stateSome
	}

	return stateNone
}

// valueJSON returns the encoded value of o, or None if o is empty.
func valueJSON(o Optional) (option.Option[string], error) {
	if !o.IsDefined() {
		return option.None[string](), nil
	}

	b, err := o.MarshalJSON()
	if err != nil {
		return option.None[string](), err
	}

	return option.Some(string(b)), nil
}
