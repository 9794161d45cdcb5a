package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type fakeTable struct {
	header []string
	rows   [][]string
}

func (f fakeTable) CSVHeader() []string { return f.header }
func (f fakeTable) CSVRows() [][]string { return f.rows }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"csv", FormatCSV, false},
		{"junit", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewFormatter(FormatText)
	if err := f.FormatTo(buf, "3 matches"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "3 matches\n" {
		t.Errorf("text output = %q", got)
	}
}

func TestJSONFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewFormatter(FormatJSON)

	data := map[string]int{"matches": 3}
	if err := f.FormatTo(buf, data); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["matches"] != 3 {
		t.Errorf("decoded = %v", decoded)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("JSON output should be indented")
	}
}

func TestCSVFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := NewFormatter(FormatCSV)

	data := fakeTable{
		header: []string{"file", "line"},
		rows:   [][]string{{"a.go", "10"}, {"b.go", "2"}},
	}
	if err := f.FormatTo(buf, data); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV output has %d lines, want 3: %q", len(lines), buf.String())
	}
	if lines[0] != "file,line" || lines[1] != "a.go,10" {
		t.Errorf("CSV rows = %v", lines)
	}
}

func TestCSVFormatterRejectsNonTabular(t *testing.T) {
	f := NewFormatter(FormatCSV)
	if err := f.FormatTo(&bytes.Buffer{}, 42); err == nil {
		t.Fatal("CSV formatter accepted a non-tabular value")
	}
}

func TestNewFormatterDefaultsToText(t *testing.T) {
	if _, ok := NewFormatter("bogus").(*TextFormatter); !ok {
		t.Error("unknown format should fall back to text")
	}
}
