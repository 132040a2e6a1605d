package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// OutputFormatter handles formatted output to the console
type OutputFormatter struct {
	out    io.Writer
	errOut io.Writer
}

// NewOutputFormatterWithWriters creates an OutputFormatter with custom writers
func NewOutputFormatterWithWriters(out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		out:    out,
		errOut: errOut,
	}
}

// Success prints a success message with a checkmark prefix
func (o *OutputFormatter) Success(format string, args ...interface{}) {
	fmt.Fprintf(o.out, "[OK] %s\n", fmt.Sprintf(format, args...))
}

// Line prints s followed by a newline, verbatim. Results are printed with
// Line so an empty result still produces one (empty) line.
func (o *OutputFormatter) Line(s string) {
	fmt.Fprintln(o.out, s)
}

// Warn prints a warning message with a warning prefix
func (o *OutputFormatter) Warn(format string, args ...interface{}) {
	fmt.Fprintf(o.errOut, "[WARN] %s\n", fmt.Sprintf(format, args...))
}

// JSON outputs data as formatted JSON
func (o *OutputFormatter) JSON(data interface{}) error {
	encoder := json.NewEncoder(o.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Table prints data in a tabular format
// headers is a slice of column headers
// rows is a slice of row data, where each row is a slice of strings
func (o *OutputFormatter) Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)

	if len(headers) > 0 {
		fmt.Fprintln(w, strings.Join(headers, "\t"))
		separators := make([]string, len(headers))
		for i, h := range headers {
			separators[i] = strings.Repeat("-", len(h))
		}
		fmt.Fprintln(w, strings.Join(separators, "\t"))
	}

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	w.Flush()
}
