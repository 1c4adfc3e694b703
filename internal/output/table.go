package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aryankumar/kubetab/internal/row"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter formats output as a table (kubectl-style)
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format outputs a record as a KEY/VALUE table of its scalar leaves, followed
// by one titled table per nested sequence in field order.
func (f *TableFormatter) Format(w io.Writer, r row.Row) error {
	colors := NewColorScheme(w, f.options.NoColor)

	var (
		scalars   []row.Cell
		sequences []row.Field
	)
	for _, field := range r.Fields() {
		switch field.Value.Kind() {
		case row.KindTable:
			sequences = append(sequences, field)
		case row.KindRow:
			scalars = append(scalars, row.New(field).Flatten()...)
		default:
			scalars = append(scalars, row.Cell{Path: field.Key, Value: field.Value.Str()})
		}
	}

	if len(scalars) > 0 {
		table := f.createTable(w)
		f.setHeader(table, []string{"KEY", "VALUE"}, colors)
		for _, c := range scalars {
			table.Append([]string{colors.Key("%s", c.Path), c.Value})
		}
		table.Render()
	}

	for i, seq := range sequences {
		if i > 0 || len(scalars) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, colors.Title("%s:", strings.ToUpper(seq.Key)))

		rows, _ := seq.Value.Rows()
		if len(rows) == 0 {
			fmt.Fprintln(w, "<none>")
			continue
		}
		f.renderRows(w, rows, colors)
	}

	return nil
}

// FormatList outputs records as a single table whose columns are the union of
// their flattened paths
func (f *TableFormatter) FormatList(w io.Writer, rows []row.Row) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}

	f.renderRows(w, rows, NewColorScheme(w, f.options.NoColor))
	return nil
}

func (f *TableFormatter) renderRows(w io.Writer, rows []row.Row, colors *ColorScheme) {
	columns := row.Columns(rows)

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = strings.ToUpper(c)
	}

	table := f.createTable(w)
	f.setHeader(table, headers, colors)

	for _, r := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			value := r.Lookup(c)
			if paint := colors.CellColor(c); paint != nil && value != "" {
				value = paint("%s", value)
			}
			cells[i] = value
		}
		table.Append(cells)
	}

	table.Render()
}

func (f *TableFormatter) setHeader(table *tablewriter.Table, headers []string, colors *ColorScheme) {
	if f.options.NoHeaders {
		return
	}
	if colors.Disabled {
		table.SetHeader(headers)
		return
	}

	colored := make([]string, len(headers))
	for i, h := range headers {
		colored[i] = colors.Header("%s", h)
	}
	table.SetHeader(colored)
}

// createTable creates a new table with kubectl-style configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	// Headers are already upper-cased; auto formatting would turn "." into spaces
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}
