package importer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/plextrac/ptimport/internal/prompt"
)

var safeIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,64}$`)

// ValidateID rejects identifiers that cannot be placed in an API path verbatim.
func ValidateID(id, label string) error {
	if !safeIDRe.MatchString(id) {
		return fmt.Errorf("invalid %s %q: must be 1-64 alphanumeric/dash/underscore characters", label, id)
	}
	return nil
}

// ResolveReport returns the report ID typed by the user, or creates a report
// named reportName when the answer is blank.
func ResolveReport(ctx context.Context, api API, p prompt.Prompter, auth client.AuthHeader, clientID, reportName string) (string, error) {
	for {
		answer, err := p.Ask("Report ID to import into (leave blank to create a new report): ")
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			break
		}
		if err := ValidateID(answer, "report ID"); err != nil {
			output.Warn("%v", err)
			continue
		}
		return answer, nil
	}

	id, err := api.CreateReport(ctx, auth, clientID, client.ImportReport(reportName))
	if err != nil {
		return "", fmt.Errorf("creating report: %w", err)
	}
	output.Success("Created report %s (%s)", reportName, id)
	return id, nil
}
