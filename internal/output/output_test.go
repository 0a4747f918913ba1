package output

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	viper.Set("no_color", true)
	t.Cleanup(func() {
		Stdout, Stderr = prevOut, prevErr
		viper.Reset()
	})
	return &out, &errOut
}

func TestCurrent(t *testing.T) {
	t.Cleanup(viper.Reset)

	for in, want := range map[string]Format{
		"":      Table,
		"table": Table,
		"JSON":  JSON,
		"csv":   CSV,
		"yaml":  YAML,
		"xml":   Table,
	} {
		viper.Set("output", in)
		assert.Equal(t, want, Current(), in)
	}
}

func TestStatusLines(t *testing.T) {
	out, errOut := capture(t)

	Success("imported %d file", 1)
	Warn("client %q not listed", "9")
	Info("uploading")
	Error("boom: %v", "x")

	assert.Equal(t, "✓ imported 1 file\n⚠ client \"9\" not listed\n→ uploading\n", out.String())
	assert.Equal(t, "✗ boom: x\n", errOut.String())
}

func TestStatusLines_StructuredOutputKeepsStdoutClean(t *testing.T) {
	out, errOut := capture(t)
	viper.Set("output", "json")

	Info("logging in")
	Success("done")
	PrintTableTo(Status(), []string{"ID"}, [][]string{{"7"}})
	PrintJSON(map[string]string{"id": "7"})

	assert.JSONEq(t, `{"id":"7"}`, out.String())
	assert.Contains(t, errOut.String(), "→ logging in")
	assert.Contains(t, errOut.String(), "✓ done")
}

func TestPrintCSV(t *testing.T) {
	out, _ := capture(t)

	PrintCSV([]string{"ID", "Name"}, [][]string{{"7", "Acme, Inc"}})
	assert.Equal(t, "ID,Name\n7,\"Acme, Inc\"\n", out.String())
}

func TestPrintJSON(t *testing.T) {
	out, _ := capture(t)

	PrintJSON(map[string]string{"id": "7"})
	assert.JSONEq(t, `{"id":"7"}`, out.String())
}

func TestPrintYAML(t *testing.T) {
	out, _ := capture(t)

	PrintYAML([]map[string]string{{"id": "7"}})
	assert.Equal(t, "- id: \"7\"\n", out.String())
}

func TestPrintTable(t *testing.T) {
	out, _ := capture(t)

	PrintTable([]string{"ID", "Name"}, [][]string{{"7", "Acme"}, {"abc", "Globex"}})
	s := out.String()
	require.Contains(t, s, "Acme")
	require.Contains(t, s, "Globex")
	require.Contains(t, s, "abc")
}

func TestPrintTable_Empty(t *testing.T) {
	out, _ := capture(t)

	PrintTable([]string{"ID"}, nil)
	assert.Equal(t, "No results.\n", out.String())
}
