package printers

import (
	"fmt"

	"github.com/pouriyajamshidi/option/internal/options"
)

// PlainPrinter is a printer that prints options in a simple, plain text format.
type PlainPrinter struct {
	opt settings
}

type PlainPrinterOption = options.Option[PlainPrinter]

func (p *PlainPrinter) settings() *settings {
	return &p.opt
}

// NewPlainPrinter creates a new PlainPrinter writing to stdout.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{opt: defaultSettings()}
	options.Apply(p, opts...)

	return p
}

// PrintOption prints a line such as "port: Some(443)".
func (p *PlainPrinter) PrintOption(label string, o Optional) {
	if p.opt.skip(o) {
		return
	}

	fmt.Fprintf(p.opt.Out, "%s%s: %s\n", p.opt.timestamp(), label, o)
}

// PrintInfo prints a formatted informational message.
func (p *PlainPrinter) PrintInfo(format string, args ...any) {
	fmt.Fprintf(p.opt.Out, "%s%s\n", p.opt.timestamp(), fmt.Sprintf(format, args...))
}

// PrintError prints a formatted error message to the error writer.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(p.opt.Err, "%s%s\n", p.opt.timestamp(), fmt.Sprintf(format, args...))
}

// Done satisfies the "printer" interface but does nothing in this implementation
func (p *PlainPrinter) Done() error {
	return nil
}
