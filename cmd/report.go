package cmd

import (
	"fmt"

	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/importer"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"reports"},
	Short:   "Manage reports",
}

var reportCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an empty report under a client",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client")
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")
		status, _ := cmd.Flags().GetString("status")

		if clientID == "" {
			return fmt.Errorf("--client is required")
		}
		if err := importer.ValidateID(clientID, "client ID"); err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		if description == "" {
			description = "Created by ptimport: " + name
		}

		s, err := login(cmd.Context())
		if err != nil {
			return err
		}

		nr := client.NewReport{Name: name, Description: description, Status: status}
		id, err := s.client.CreateReport(cmd.Context(), s.auth, clientID, nr)
		if err != nil {
			return fmt.Errorf("creating report: %w", err)
		}

		switch output.Current() {
		case output.JSON:
			output.PrintJSON(map[string]string{"client_id": clientID, "report_id": id})
		case output.YAML:
			output.PrintYAML(map[string]string{"client_id": clientID, "report_id": id})
		default:
			output.Success("Report created: %s (%s)", name, id)
		}
		return nil
	},
}

func init() {
	reportCreateCmd.Flags().StringP("client", "c", "", "Client ID (required)")
	reportCreateCmd.Flags().StringP("name", "n", "", "Report name (required)")
	reportCreateCmd.Flags().String("description", "", "Report description")
	reportCreateCmd.Flags().String("status", "Open", "Report status")

	reportCmd.AddCommand(reportCreateCmd)
	rootCmd.AddCommand(reportCmd)
}
