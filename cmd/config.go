package cmd

import (
	"fmt"

	"github.com/plextrac/ptimport/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configKeys = []string{"hostname", "username", "file", "output", "no_color", "insecure", "timeout"}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify CLI configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		m := make(map[string]any, len(configKeys))
		for _, k := range configKeys {
			m[k] = viper.Get(k)
		}
		switch output.Current() {
		case output.JSON:
			output.PrintJSON(m)
		case output.YAML:
			output.PrintYAML(m)
		default:
			for _, k := range configKeys {
				fmt.Fprintf(output.Stdout, "  %-12s %s\n", k+":", viper.GetString(k))
			}
			if f := viper.ConfigFileUsed(); f != "" {
				fmt.Fprintf(output.Stdout, "\n  (loaded from %s)\n", f)
			}
		}
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !isConfigKey(key) {
			return fmt.Errorf("unknown key %q (known: %v)", key, configKeys)
		}
		viper.Set(key, value)

		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			configFile = cfgFile
		}
		if configFile == "" {
			path, err := defaultConfigPath()
			if err != nil {
				return fmt.Errorf("no config file found, use --config: %w", err)
			}
			configFile = path
		}

		if err := viper.WriteConfigAs(configFile); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		output.Success("Set %s=%s in %s", key, value, configFile)
		return nil
	},
}

func isConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
