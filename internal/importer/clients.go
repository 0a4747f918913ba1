package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/plextrac/ptimport/internal/prompt"
	"github.com/rs/zerolog/log"
)

// ResolveClient lists the clients and keeps prompting until the user picks a
// listed ID or a new client is created.
func ResolveClient(ctx context.Context, api API, p prompt.Prompter, auth client.AuthHeader) (string, error) {
	records, err := api.ListClients(ctx, auth)
	if err != nil {
		return "", fmt.Errorf("listing clients: %w", err)
	}

	summaries, skipped := client.Summaries(records)
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Msg("ignoring client records without a three-field data tuple")
	}

	known := make(map[string]bool, len(summaries))
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		known[s.ID] = true
		rows = append(rows, []string{s.ID, s.Name})
	}
	output.PrintTableTo(output.Status(), []string{"Client ID", "Name"}, rows)

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		answer, err := p.Ask("Client ID from the list above to import into (leave blank to create a new client): ")
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer != "" {
			if err := ValidateID(answer, "client ID"); err != nil {
				output.Warn("%v", err)
				continue
			}
		}

		switch {
		case answer == "":
			nc, err := AskNewClient(p)
			if err != nil {
				return "", err
			}
			id, err := api.CreateClient(ctx, auth, nc)
			if err == nil {
				err = ValidateID(id, "client ID")
			}
			if err != nil {
				output.Error("Creating client failed: %v", err)
				continue
			}
			output.Success("Created client %s (%s)", nc.Name, id)
			return id, nil
		case known[answer]:
			return answer, nil
		default:
			output.Warn("Client %q is not in the list", answer)
		}
	}
}

// AskNewClient prompts for the fields of a new client.
func AskNewClient(p prompt.Prompter) (client.NewClient, error) {
	var nc client.NewClient
	fields := []struct {
		label string
		dst   *string
	}{
		{"New client name: ", &nc.Name},
		{"Client description: ", &nc.Description},
		{"Client point of contact: ", &nc.POC},
		{"Client point of contact email: ", &nc.POCEmail},
	}
	for _, f := range fields {
		v, err := p.Ask(f.label)
		if err != nil {
			return client.NewClient{}, err
		}
		*f.dst = strings.TrimSpace(v)
	}
	return nc, nil
}
