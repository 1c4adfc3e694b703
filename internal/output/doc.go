// Package output renders rows for the terminal.
//
// Three formats are supported: a kubectl-style table, indented JSON and YAML.
// JSON and YAML keep the key order of each row. The table format renders a
// single record as a KEY/VALUE table of its scalar leaves followed by one table
// per nested sequence, and a listing as one table whose columns are the
// flattened field paths:
//
//	formatter := output.NewFormatter(output.FormatTable, output.WithNoColor(true))
//	formatter.Format(os.Stdout, record)
//	formatter.FormatList(os.Stdout, rows)
//
// Colors are enabled only when writing to a terminal and can be turned off with
// WithNoColor.
package output
