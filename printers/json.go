package printers

import (
	"encoding/json"
	"fmt"

	"github.com/pouriyajamshidi/option/internal/options"
)

// JSONEventType is a special type for each method
// in the printer interface so that automatic tools
// can understand what kind of an event they've received.
type JSONEventType string

const (
	optionEvent JSONEventType = "option" // Event type for `PrintOption` method.
	infoEvent   JSONEventType = "info"   // Event type for `PrintInfo` method.
	errorEvent  JSONEventType = "error"  // Event type for `PrintError` method.
)

// JSONData contains all possible fields for JSON output.
// Because one event usually contains only a subset of fields,
// other fields will be omitted in the output.
type JSONData struct {
	Type      JSONEventType `json:"type"` // Specifies type of a message/event.
	Timestamp string        `json:"timestamp,omitempty"`
	Message   string        `json:"message"` // Message contains a message similar to other plain and colored printers.
	Label     string        `json:"label,omitempty"`
	// Defined is a pointer on purpose, otherwise defined=false would be
	// omitted, but it still has to be omitted for non-option events.
	Defined *bool           `json:"defined,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"` // Value is the encoded value of a defined option.
}

// JSONPrinter is a struct that holds a JSON encoder to print structured JSON output.
type JSONPrinter struct {
	encoder *json.Encoder
	pretty  bool
	opt     settings
}

type JSONPrinterOption = options.Option[JSONPrinter]

func (p *JSONPrinter) settings() *settings {
	return &p.opt
}

// WithPrettyJSON indents every event.
func WithPrettyJSON() JSONPrinterOption {
	return func(p *JSONPrinter) {
		p.pretty = true
	}
}

// NewJSONPrinter creates a new JSONPrinter instance writing one event per line.
func NewJSONPrinter(opts ...JSONPrinterOption) *JSONPrinter {
	p := &JSONPrinter{opt: defaultSettings()}
	options.Apply(p, opts...)

	p.encoder = json.NewEncoder(p.opt.Out)
	if p.pretty {
		p.encoder.SetIndent("", "\t")
	}

	return p
}

func (p *JSONPrinter) timestamp() string {
	if !p.opt.ShowTimestamp {
		return ""
	}

	return p.opt.Now().Format(TimeFormat)
}

// PrintOption prints an "option" event for o.
func (p *JSONPrinter) PrintOption(label string, o Optional) {
	if p.opt.skip(o) {
		return
	}

	defined := o.IsDefined()
	data := JSONData{
		Type:      optionEvent,
		Timestamp: p.timestamp(),
		Message:   fmt.Sprintf("%s: %s", label, o),
		Label:     label,
		Defined:   &defined,
	}

	value, err := valueJSON(o)
	if err != nil {
		p.PrintError("encode %s: %s", label, err)
		return
	}

	value.ForEach(func(v string) {
		data.Value = json.RawMessage(v)
	})

	p.encoder.Encode(data)
}

// PrintInfo formats and prints an informational message in JSON format.
func (p *JSONPrinter) PrintInfo(format string, args ...any) {
	p.encoder.Encode(JSONData{
		Type:      infoEvent,
		Timestamp: p.timestamp(),
		Message:   fmt.Sprintf(format, args...),
	})
}

// PrintError formats and prints an error message in JSON format.
func (p *JSONPrinter) PrintError(format string, args ...any) {
	p.encoder.Encode(JSONData{
		Type:      errorEvent,
		Timestamp: p.timestamp(),
		Message:   fmt.Sprintf(format, args...),
	})
}

// Done satisfies the "printer" interface but does nothing in this implementation
func (p *JSONPrinter) Done() error {
	return nil
}
