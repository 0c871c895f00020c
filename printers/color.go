package printers

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/pouriyajamshidi/option/internal/options"
	"golang.org/x/term"
)

// Color functions used when printing information
var (
	ColorSome  = color.LightGreen.Sprintf
	ColorNone  = color.Yellow.Sprintf
	ColorLabel = color.LightCyan.Sprintf
	ColorInfo  = color.LightBlue.Sprintf
	ColorError = color.Red.Sprintf
)

// ColorPrinter prints the same lines as PlainPrinter, colouring Some green and None yellow.
// Colour is only used when the output is a terminal, unless forced with WithColor.
type ColorPrinter struct {
	opt   settings
	color *bool
}

type ColorPrinterOption = options.Option[ColorPrinter]

func (p *ColorPrinter) settings() *settings {
	return &p.opt
}

// WithColor forces colour on or off regardless of the output.
func WithColor(enabled bool) ColorPrinterOption {
	return func(p *ColorPrinter) {
		p.color = &enabled
	}
}

// NewColorPrinter creates a new ColorPrinter writing to stdout.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{opt: defaultSettings()}
	options.Apply(p, opts...)

	return p
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func (p *ColorPrinter) colored(w io.Writer) bool {
	if p.color != nil {
		return *p.color
	}

	return isTerminal(w)
}

// PrintOption prints a line such as "port: Some(443)" in colour.
func (p *ColorPrinter) PrintOption(label string, o Optional) {
	if p.opt.skip(o) {
		return
	}

	if !p.colored(p.opt.Out) {
		fmt.Fprintf(p.opt.Out, "%s%s: %s\n", p.opt.timestamp(), label, o)
		return
	}

	paint := ColorNone
	if o.IsDefined() {
		paint = ColorSome
	}

	fmt.Fprintf(p.opt.Out, "%s%s: %s\n", p.opt.timestamp(), ColorLabel("%s", label), paint("%s", o))
}

// PrintInfo prints a formatted informational message in light blue.
func (p *ColorPrinter) PrintInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.colored(p.opt.Out) {
		msg = ColorInfo("%s", msg)
	}

	fmt.Fprintf(p.opt.Out, "%s%s\n", p.opt.timestamp(), msg)
}

// PrintError prints a formatted error message in red to the error writer.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.colored(p.opt.Err) {
		msg = ColorError("%s", msg)
	}

	fmt.Fprintf(p.opt.Err, "%s%s\n", p.opt.timestamp(), msg)
}

// Done satisfies the "printer" interface but does nothing in this implementation
func (p *ColorPrinter) Done() error {
	return nil
}
