package cmd

import (
	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/importer"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/plextrac/ptimport/internal/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runImport(cmd *cobra.Command, args []string) error {
	r := &importer.Runner{
		Connect: connect,
		Prompt:  newPrompter(),
	}
	res, err := r.Run(cmd.Context(), presetInputs())
	if err != nil {
		return err
	}

	switch output.Current() {
	case output.JSON:
		output.PrintJSON(res)
	case output.YAML:
		output.PrintYAML(res)
	}
	return nil
}

// newPrompter is swapped out by tests that script the answers.
var newPrompter = func() prompt.Prompter {
	return prompt.Stdio()
}

func connect(hostname string) importer.API {
	return client.FromConfig(hostname)
}

func presetInputs() importer.Inputs {
	return importer.Inputs{
		Hostname: viper.GetString("hostname"),
		Username: viper.GetString("username"),
		ScanPath: viper.GetString("file"),
	}
}
