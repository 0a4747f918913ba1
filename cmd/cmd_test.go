package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/plextrac/ptimport/internal/importer"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	prevOut, prevErr := output.Stdout, output.Stderr
	output.Stdout, output.Stderr = &out, io.Discard
	t.Cleanup(func() {
		output.Stdout, output.Stderr = prevOut, prevErr
	})

	rootCmd.SetArgs(args)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "ptimport v"+version)
	assert.Contains(t, out, "OS/Arch:")
}

func TestReportCreate_ValidatesBeforeLogin(t *testing.T) {
	_, err := execute(t, "report", "create", "--client", "", "--name", "x")
	require.EqualError(t, err, "--client is required")

	_, err = execute(t, "report", "create", "--client", "a/b", "--name", "x")
	require.ErrorContains(t, err, "invalid client ID")

	_, err = execute(t, "report", "create", "--client", "7", "--name", "")
	require.EqualError(t, err, "--name is required")
}

func TestConfigSetAndShow(t *testing.T) {
	t.Cleanup(func() { cfgFile = "" })
	path := filepath.Join(t.TempDir(), "ptimport.yaml")

	out, err := execute(t, "config", "set", "hostname", "https://acme.plextrac.com", "--config", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Set hostname=https://acme.plextrac.com")
	assert.FileExists(t, path)

	out, err = execute(t, "config", "show", "--config", path, "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "https://acme.plextrac.com")

	_, err = execute(t, "config", "set", "password", "nope", "--config", path)
	require.ErrorContains(t, err, "unknown key")
}

func TestPresetInputs(t *testing.T) {
	t.Cleanup(func() {
		for _, k := range []string{"hostname", "username", "file"} {
			viper.Set(k, "")
		}
	})
	viper.Set("hostname", "https://acme.plextrac.com")
	viper.Set("username", "alice")
	viper.Set("file", "/tmp/scan.nessus")

	assert.Equal(t, importer.Inputs{
		Hostname: "https://acme.plextrac.com",
		Username: "alice",
		ScanPath: "/tmp/scan.nessus",
	}, presetInputs())
}

func TestIsConfigKey(t *testing.T) {
	assert.True(t, isConfigKey("hostname"))
	assert.False(t, isConfigKey("password"))
}
