package output

import (
	"io"

	"github.com/aryankumar/kubetab/internal/row"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// Format outputs a single record as a YAML mapping
func (f *YAMLFormatter) Format(w io.Writer, r row.Row) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(r)
}

// FormatList outputs records as a YAML sequence
func (f *YAMLFormatter) FormatList(w io.Writer, rows []row.Row) error {
	if rows == nil {
		rows = []row.Row{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(rows)
}
