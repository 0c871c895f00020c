package printers

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pouriyajamshidi/option/internal/options"
)

const (
	colTimestamp string = "Timestamp"
	colLabel     string = "Label"
	colState     string = "State"
	colValue     string = "Value"
)

const (
	filePermission os.FileMode = 0644
	fileFlag       int         = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
)

// CSVPrinter is responsible for writing options to a CSV file.
type CSVPrinter struct {
	Writer   *csv.Writer
	File     *os.File
	Filename string
	opt      settings
}

type CSVPrinterOption = options.Option[CSVPrinter]

func (p *CSVPrinter) settings() *settings {
	return &p.opt
}

// NewCSVPrinter creates the CSV file at filePath, adding a .csv extension
// when missing, and writes the header row.
func NewCSVPrinter(filePath string, opts ...CSVPrinterOption) (*CSVPrinter, error) {
	filename := addCSVExtension(filePath)

	file, err := os.OpenFile(filename, fileFlag, filePermission)
	if err != nil {
		return nil, fmt.Errorf("create CSV file %s: %w", filename, err)
	}

	p := &CSVPrinter{
		Writer:   csv.NewWriter(file),
		File:     file,
		Filename: filename,
		opt:      defaultSettings(),
	}
	options.Apply(p, opts...)

	if err := p.writeHeader(); err != nil {
		file.Close()
		return nil, err
	}

	return p, nil
}

func addCSVExtension(filename string) string {
	if strings.HasSuffix(filename, ".csv") {
		return filename
	}

	return filename + ".csv"
}

func (p *CSVPrinter) writeHeader() error {
	headers := []string{colTimestamp, colLabel, colState, colValue}

	if err := p.Writer.Write(headers); err != nil {
		return fmt.Errorf("write CSV headers: %w", err)
	}

	p.Writer.Flush()

	return p.Writer.Error()
}

// PrintOption writes one record for o. The value column holds the
// JSON encoding of the value and is empty for None.
func (p *CSVPrinter) PrintOption(label string, o Optional) {
	if p.opt.skip(o) {
		return
	}

	value, err := valueJSON(o)
	if err != nil {
		p.PrintError("encode %s: %s", label, err)
		return
	}

	record := []string{
		p.opt.Now().Format(TimeFormat),
		label,
		state(o),
		value.GetOrZero(),
	}

	if err := p.Writer.Write(record); err != nil {
		p.PrintError("write CSV record: %s", err)
		return
	}

	p.Writer.Flush()
}

// PrintInfo satisfies the "printer" interface but does nothing in this implementation
func (p *CSVPrinter) PrintInfo(_ string, _ ...any) {}

// PrintError prints an error message to the error writer.
func (p *CSVPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(p.opt.Err, format+"\n", args...)
}

// Done flushes the writer and closes the file.
func (p *CSVPrinter) Done() error {
	p.Writer.Flush()
	if err := p.Writer.Error(); err != nil {
		p.File.Close()
		return fmt.Errorf("flush CSV file %s: %w", p.Filename, err)
	}

	return p.File.Close()
}
