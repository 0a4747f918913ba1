package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/prompt"
	"github.com/rs/zerolog/log"
)

// Authenticate logs in and, when the account has MFA enabled, performs the
// single one-time-code exchange.
func Authenticate(ctx context.Context, api API, p prompt.Prompter, username, password string) (client.AuthHeader, error) {
	resp, err := api.Authenticate(ctx, username, password)
	if err != nil {
		return client.AuthHeader{}, err
	}
	if !resp.MFAEnabled {
		return client.AuthHeader{Token: resp.Token}, nil
	}

	log.Debug().Str("username", username).Msg("multi-factor authentication required")
	code, err := p.AskSecret("Multi-factor authentication token: ")
	if err != nil {
		return client.AuthHeader{}, fmt.Errorf("reading MFA token: %w", err)
	}
	auth, err := api.VerifyMFA(ctx, client.AuthHeader{Token: resp.Token}, strings.TrimSpace(code))
	if err != nil {
		return client.AuthHeader{}, fmt.Errorf("multi-factor authentication: %w", err)
	}
	return auth, nil
}
