package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plextrac/ptimport/internal/importer"
	"github.com/plextrac/ptimport/internal/prompt"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plextracStub(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimPrefix(r.URL.Path, "/api/v1") {
		case "/authenticate":
			_, _ = io.WriteString(w, `{"token":"tok","mfa_enabled":false}`)
		case "/client/list":
			_, _ = io.WriteString(w, `[{"doc_id":["7"],"data":["7","Acme","acme"]}]`)
		case "/client/7/report/create":
			_, _ = io.WriteString(w, `{"report_id":"r1"}`)
		case "/client/7/report/r1/import/nessus":
			_, _ = io.Copy(io.Discard, r.Body)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func scriptAnswers(t *testing.T, lines ...string) {
	t.Helper()
	prev := newPrompter
	newPrompter = func() prompt.Prompter {
		return prompt.New(strings.NewReader(strings.Join(lines, "\n")+"\n"), io.Discard)
	}
	t.Cleanup(func() { newPrompter = prev })
}

func TestImportCommand_JSONOutputIsParseable(t *testing.T) {
	t.Cleanup(func() { _ = rootCmd.PersistentFlags().Set("output", "table") })
	host := plextracStub(t)
	scan := filepath.Join(t.TempDir(), "scan.nessus")
	require.NoError(t, os.WriteFile(scan, []byte("<NessusClientData_v2/>"), 0o600))

	viper.Set("hostname", host)
	viper.Set("username", "alice")
	viper.Set("file", scan)
	t.Cleanup(func() {
		for _, k := range []string{"hostname", "username", "file"} {
			viper.Set(k, "")
		}
	})
	scriptAnswers(t, "pw", "7", "")

	out, err := execute(t, "-o", "json", "--no-color")
	require.NoError(t, err)

	var res importer.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.Equal(t, importer.Result{
		ClientID:  "7",
		ReportID:  "r1",
		ReportURL: host + "/client/7/report/r1/flaws",
	}, res)
}
