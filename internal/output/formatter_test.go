package output

import (
	"testing"

	"github.com/aryankumar/kubetab/internal/row"
)

func sampleRecord() row.Row {
	return row.New(
		row.Str("apiVersion", "v1"),
		row.Seq("clusters", []row.Row{
			row.New(
				row.Sub("cluster", row.New(
					row.Str("certificate-authority-data", "Y2E="),
					row.Str("server", "https://dev:6443"),
				)),
				row.Str("name", "dev-cluster"),
			),
		}),
		row.Seq("contexts", nil),
		row.Str("current_context", "dev"),
		row.Str("kind", "Config"),
	)
}

func sampleList() []row.Row {
	return []row.Row{
		row.New(row.Str("current", ""), row.Str("name", "dev"), row.Str("cluster", "dev-cluster")),
		row.New(row.Str("current", "*"), row.Str("name", "prod"), row.Str("cluster", "prod-cluster")),
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		check  func(Formatter) bool
	}{
		{
			name:   "table",
			format: FormatTable,
			check:  func(f Formatter) bool { _, ok := f.(*TableFormatter); return ok },
		},
		{
			name:   "json",
			format: FormatJSON,
			check:  func(f Formatter) bool { _, ok := f.(*JSONFormatter); return ok },
		},
		{
			name:   "yaml",
			format: FormatYAML,
			check:  func(f Formatter) bool { _, ok := f.(*YAMLFormatter); return ok },
		},
		{
			name:   "unknown defaults to table",
			format: Format("xml"),
			check:  func(f Formatter) bool { _, ok := f.(*TableFormatter); return ok },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f := NewFormatter(tt.format); !tt.check(f) {
				t.Errorf("NewFormatter(%q) returned %T", tt.format, f)
			}
		})
	}
}

func TestNewFormatter_Options(t *testing.T) {
	f := NewFormatter(FormatTable, WithNoColor(true), WithNoHeaders(true)).(*TableFormatter)

	if !f.options.NoColor {
		t.Error("expected NoColor to be set")
	}
	if !f.options.NoHeaders {
		t.Error("expected NoHeaders to be set")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTable},
		{in: "table", want: FormatTable},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "xml", wantErr: true},
		{in: "JSON", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
