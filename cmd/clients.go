package cmd

import (
	"fmt"

	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/importer"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:     "clients",
	Aliases: []string{"client"},
	Short:   "List or create PlexTrac clients",
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the clients visible to your account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := login(cmd.Context())
		if err != nil {
			return err
		}
		records, err := s.client.ListClients(cmd.Context(), s.auth)
		if err != nil {
			return fmt.Errorf("listing clients: %w", err)
		}

		summaries, skipped := client.Summaries(records)
		if skipped > 0 {
			log.Info().Int("skipped", skipped).Msg("records without a three-field data tuple were not listed")
		}

		header := []string{"Client ID", "Name"}
		rows := make([][]string, 0, len(summaries))
		for _, c := range summaries {
			rows = append(rows, []string{c.ID, c.Name})
		}
		output.Print(summaries, header, rows)
		if output.Current() == output.Table {
			fmt.Fprintf(output.Stdout, "\nTotal: %d clients\n", len(summaries))
		}
		return nil
	},
}

var clientsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client",
	Long: `Create a client. Without --name every field is prompted for; with --name the
remaining fields come from their flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := login(cmd.Context())
		if err != nil {
			return err
		}

		var nc client.NewClient
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			nc.Name = name
			nc.Description, _ = cmd.Flags().GetString("description")
			nc.POC, _ = cmd.Flags().GetString("poc")
			nc.POCEmail, _ = cmd.Flags().GetString("poc-email")
		} else if nc, err = importer.AskNewClient(s.prompt); err != nil {
			return err
		}

		id, err := s.client.CreateClient(cmd.Context(), s.auth, nc)
		if err != nil {
			return fmt.Errorf("creating client: %w", err)
		}

		switch output.Current() {
		case output.JSON:
			output.PrintJSON(map[string]string{"client_id": id})
		case output.YAML:
			output.PrintYAML(map[string]string{"client_id": id})
		default:
			output.Success("Client created: %s (%s)", nc.Name, id)
		}
		return nil
	},
}

func init() {
	clientsCreateCmd.Flags().StringP("name", "n", "", "Client name")
	clientsCreateCmd.Flags().String("description", "", "Client description")
	clientsCreateCmd.Flags().String("poc", "", "Point of contact name")
	clientsCreateCmd.Flags().String("poc-email", "", "Point of contact email")

	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsCreateCmd)
	rootCmd.AddCommand(clientsCmd)
}
