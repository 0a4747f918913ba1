// Package output provides formatted output helpers (table, JSON, CSV, YAML)
// and status lines.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Format identifies an output format.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	CSV   Format = "csv"
	YAML  Format = "yaml"
)

// Stdout receives command output; Stderr receives diagnostics.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Current returns the user-selected output format.
func Current() Format {
	f := strings.ToLower(viper.GetString("output"))
	switch Format(f) {
	case JSON, CSV, YAML:
		return Format(f)
	default:
		return Table
	}
}

// PrintJSON marshals v to indented JSON and prints it.
func PrintJSON(v any) {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// PrintYAML marshals v to YAML and prints it.
func PrintYAML(v any) {
	enc := yaml.NewEncoder(Stdout)
	enc.SetIndent(2)
	_ = enc.Encode(v)
	_ = enc.Close()
}

// PrintCSV writes header + rows as CSV.
func PrintCSV(header []string, rows [][]string) {
	w := csv.NewWriter(Stdout)
	_ = w.Write(header)
	for _, r := range rows {
		_ = w.Write(r)
	}
	w.Flush()
}

// PrintTable renders header and rows as a bordered table.
func PrintTable(header []string, rows [][]string) {
	PrintTableTo(Stdout, header, rows)
}

// PrintTableTo renders a table to w.
func PrintTableTo(w io.Writer, header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}

	cols := make([]any, len(header))
	for i, h := range header {
		if colorEnabled() {
			h = color.New(color.Bold).Sprint(h)
		}
		cols[i] = h
	}

	table := tablewriter.NewWriter(w)
	table.Header(cols...)
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()
}

// Print renders header/rows in the current format, falling back to v for the
// structured formats.
func Print(v any, header []string, rows [][]string) {
	switch Current() {
	case JSON:
		PrintJSON(v)
	case YAML:
		PrintYAML(v)
	case CSV:
		PrintCSV(header, rows)
	default:
		PrintTable(header, rows)
	}
}

// Status is where progress lines go: stdout for tables, stderr when stdout
// carries JSON, CSV or YAML.
func Status() io.Writer {
	if Current() == Table {
		return Stdout
	}
	return Stderr
}

func colorEnabled() bool {
	return !viper.GetBool("no_color") && !color.NoColor
}

func status(w io.Writer, attr color.Attribute, mark, msg string, args ...any) {
	line := mark + " " + fmt.Sprintf(msg, args...)
	if colorEnabled() {
		line = color.New(attr).Sprint(line)
	}
	fmt.Fprintln(w, line)
}

// Success prints a green success message.
func Success(msg string, args ...any) {
	status(Status(), color.FgGreen, "✓", msg, args...)
}

// Info prints a progress message.
func Info(msg string, args ...any) {
	status(Status(), color.FgCyan, "→", msg, args...)
}

// Error prints a red error message.
func Error(msg string, args ...any) {
	status(Stderr, color.FgRed, "✗", msg, args...)
}

// Warn prints a yellow warning message.
func Warn(msg string, args ...any) {
	status(Status(), color.FgYellow, "⚠", msg, args...)
}
