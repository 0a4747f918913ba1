// Package importer runs the interactive Nessus import: collect input, log in,
// pick or create a client and report, upload the export and print the report
// link. Each step returns an error instead of printing and carrying on, so the
// first failure aborts the rest.
package importer

import (
	"context"
	"io"

	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/nessus"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/plextrac/ptimport/internal/prompt"
	"github.com/rs/zerolog/log"
)

// API is the subset of the PlexTrac API the import needs. *client.Client
// implements it.
type API interface {
	Authenticate(ctx context.Context, username, password string) (*client.AuthResponse, error)
	VerifyMFA(ctx context.Context, pending client.AuthHeader, code string) (client.AuthHeader, error)
	ListClients(ctx context.Context, auth client.AuthHeader) ([]client.ClientRecord, error)
	CreateClient(ctx context.Context, auth client.AuthHeader, nc client.NewClient) (string, error)
	CreateReport(ctx context.Context, auth client.AuthHeader, clientID string, nr client.NewReport) (string, error)
	ImportNessus(ctx context.Context, auth client.AuthHeader, clientID, reportID, filename string, r io.Reader) error
}

var _ API = (*client.Client)(nil)

// Runner wires the pipeline to an API and a prompter.
type Runner struct {
	// Connect returns the API of the instance at hostname.
	Connect func(hostname string) API
	Prompt  prompt.Prompter
}

// Result identifies the report the scan was imported into.
type Result struct {
	ClientID  string `json:"client_id" yaml:"client_id"`
	ReportID  string `json:"report_id" yaml:"report_id"`
	ReportURL string `json:"report_url" yaml:"report_url"`
}

// Run executes the whole import. Errors are *StageError.
func (r *Runner) Run(ctx context.Context, preset Inputs) (*Result, error) {
	creds, err := CollectCredentials(r.Prompt, preset)
	if err != nil {
		return nil, &StageError{Stage: StageCollect, Err: err}
	}
	path, err := CollectScanPath(r.Prompt, preset)
	if err != nil {
		return nil, &StageError{Stage: StageCollect, Err: err}
	}

	scan, err := nessus.Load(path)
	if err != nil {
		return nil, &StageError{Stage: StageLoad, Err: err}
	}
	defer scan.Close()
	log.Debug().Str("path", scan.Path).Int64("size", scan.Size).Msg("scan file loaded")

	api := r.Connect(creds.Hostname)

	output.Info("Logging in to %s as %s", creds.Hostname, creds.Username)
	auth, err := Authenticate(ctx, api, r.Prompt, creds.Username, creds.Password)
	creds.Password = ""
	if err != nil {
		return nil, &StageError{Stage: StageAuthenticate, Err: err}
	}
	output.Success("Login successful")

	clientID, err := ResolveClient(ctx, api, r.Prompt, auth)
	if err != nil {
		return nil, &StageError{Stage: StageClient, Err: err}
	}

	reportID, err := ResolveReport(ctx, api, r.Prompt, auth, clientID, scan.Name)
	if err != nil {
		return nil, &StageError{Stage: StageReport, Err: err}
	}

	output.Info("Uploading %s (%d bytes) to client %s, report %s", scan.Name, scan.Size, clientID, reportID)
	if err := api.ImportNessus(ctx, auth, clientID, reportID, scan.Name, scan); err != nil {
		return nil, &StageError{Stage: StageImport, Err: err}
	}

	res := &Result{
		ClientID:  clientID,
		ReportID:  reportID,
		ReportURL: client.ReportURL(client.BaseURL(creds.Hostname), clientID, reportID),
	}
	output.Success("Import successful!")
	output.Info("Visit your report at: %s", res.ReportURL)
	return res, nil
}
