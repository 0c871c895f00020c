package printers_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pouriyajamshidi/option"
	"github.com/pouriyajamshidi/option/printers"
	"github.com/stretchr/testify/assert"
)

// recordingPrinter is a fake printer that remembers what it was asked to print.
type recordingPrinter struct {
	labels []string
	values []string
}

func (rp *recordingPrinter) PrintOption(label string, o printers.Optional) {
	rp.labels = append(rp.labels, label)
	rp.values = append(rp.values, o.String())
}
func (rp *recordingPrinter) PrintInfo(_ string, _ ...any)  {}
func (rp *recordingPrinter) PrintError(_ string, _ ...any) {}
func (rp *recordingPrinter) Done() error                   { return nil }

// unencodable is an Optional whose encoder always fails.
type unencodable struct{}

func (unencodable) IsDefined() bool              { return true }
func (unencodable) String() string               { return "Some(?)" }
func (unencodable) MarshalJSON() ([]byte, error) { return nil, errors.New("cannot encode") }

func TestTrace(t *testing.T) {
	rp := &recordingPrinter{}

	got := option.Map(
		printers.Trace(rp, "raw", option.Of(21)),
		func(x int) int { return x * 2 },
	)
	got = printers.Trace(rp, "doubled", got)

	assert.Equal(t, option.Some(42), got)
	assert.Equal(t, []string{"raw", "doubled"}, rp.labels)
	assert.Equal(t, []string{"Some(21)", "Some(42)"}, rp.values)
}

func TestTraceReturnsNoneUnchanged(t *testing.T) {
	rp := &recordingPrinter{}

	got := printers.Trace(rp, "missing", option.None[string]())

	assert.True(t, got.IsEmpty())
	assert.Equal(t, []string{"None"}, rp.values)
}

func TestPrintersSatisfyInterface(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		name    string
		printer printers.Printer
	}{
		{"plain", printers.NewPlainPrinter(printers.WithWriter[*printers.PlainPrinter](&buf))},
		{"color", printers.NewColorPrinter(printers.WithWriter[*printers.ColorPrinter](&buf))},
		{"json", printers.NewJSONPrinter(printers.WithWriter[*printers.JSONPrinter](&buf))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.printer.PrintOption("answer", option.Some(42))
			assert.Contains(t, buf.String(), "answer")
			assert.NoError(t, tt.printer.Done())
		})
	}
}
