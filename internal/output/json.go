package output

import (
	"encoding/json"
	"io"

	"github.com/aryankumar/kubetab/internal/row"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs a single record as a JSON object
func (f *JSONFormatter) Format(w io.Writer, r row.Row) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// FormatList outputs records as a JSON array
func (f *JSONFormatter) FormatList(w io.Writer, rows []row.Row) error {
	if rows == nil {
		rows = []row.Row{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}
