package cmd

import (
	"context"

	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/importer"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/plextrac/ptimport/internal/prompt"
	"github.com/spf13/cobra"
)

// session is an authenticated connection shared by the non-import commands.
type session struct {
	client *client.Client
	auth   client.AuthHeader
	prompt prompt.Prompter
	creds  importer.Credentials
}

func login(ctx context.Context) (*session, error) {
	p := newPrompter()
	creds, err := importer.CollectCredentials(p, presetInputs())
	if err != nil {
		return nil, err
	}
	c := client.FromConfig(creds.Hostname)
	auth, err := importer.Authenticate(ctx, c, p, creds.Username, creds.Password)
	creds.Password = ""
	if err != nil {
		return nil, &importer.StageError{Stage: importer.StageAuthenticate, Err: err}
	}
	return &session{client: c, auth: auth, prompt: p, creds: creds}, nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check that the credentials (and MFA token) are accepted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := login(cmd.Context())
		if err != nil {
			return err
		}
		output.Success("Authenticated to %s as %s", s.creds.Hostname, s.creds.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
