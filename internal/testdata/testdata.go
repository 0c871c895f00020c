// Package testdata provides shared test helpers and fixtures.
package testdata

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/pouriyajamshidi/option/printers"
)

// Common test fixture values
const (
	TestLabel  = "port"
	TestLabel2 = "region"
)

var (
	TestTimestamp  = time.Date(2024, 1, 15, 10, 30, 45, 0, time.Local)
	TestTimestamp2 = time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)
)

// FixedClock returns a clock that always reports ts.
func FixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

// ToPtr returns a pointer to the provided value.
func ToPtr[T any](v T) *T {
	return &v
}

// CaptureOutput captures stdout during function execution and returns it as a string.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	output := <-done
	os.Stdout = oldStdout

	return output
}

// DecodeJSONEvents parses newline separated JSON printer output.
func DecodeJSONEvents(t *testing.T, output string) []printers.JSONData {
	t.Helper()

	var events []printers.JSONData
	dec := json.NewDecoder(bytes.NewBufferString(output))
	for dec.More() {
		var data printers.JSONData
		if err := dec.Decode(&data); err != nil {
			t.Fatalf("parse JSON: %v\nOutput: %s", err, output)
		}
		events = append(events, data)
	}

	return events
}
