// Package cmd provides the root Cobra command and persistent flags for ptimport.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "1.0.0"

const configName = ".ptimport"

var (
	cfgFile        string
	verbosityCount int
	verbose        bool
)

// rootCmd runs the interactive import when invoked without a sub-command.
var rootCmd = &cobra.Command{
	Use:   "ptimport",
	Short: "Import Nessus scan results into PlexTrac",
	Long: `ptimport logs in to a PlexTrac instance, lets you pick or create a client
and a report, uploads a Nessus XML export into that report and prints a link
to the imported findings.

Every value is asked for interactively. Hostname, username and file path may
be pre-filled via flags, PTIMPORT_* environment variables or a ~/.ptimport.yaml
config file. The password is always prompted for.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
		if viper.GetBool("no_color") {
			color.NoColor = true
		}
	},
	RunE: runImport,
}

// Execute runs the command tree; SIGINT and SIGTERM cancel in-flight requests.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.ptimport.yaml)")
	rootCmd.PersistentFlags().String("hostname", "", "PlexTrac instance URL, e.g. https://acme.plextrac.com")
	rootCmd.PersistentFlags().String("username", "", "PlexTrac username")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the Nessus XML export")
	rootCmd.PersistentFlags().Bool("insecure", false, "Skip TLS certificate verification")
	rootCmd.PersistentFlags().Duration("timeout", client.DefaultTimeout, "Per-request timeout, 0 disables")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format: table, json, csv, yaml")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().CountVarP(&verbosityCount, "verbosity", "v", "Increase logging verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	// Bind flags to viper keys
	viper.BindPFlag("hostname", rootCmd.PersistentFlags().Lookup("hostname"))
	viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))
	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("insecure", rootCmd.PersistentFlags().Lookup("insecure"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Environment variable bindings
	viper.SetEnvPrefix("PTIMPORT")
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}

	// Silently read config if it exists
	_ = viper.ReadInConfig()
}

// defaultConfigPath is where `config set` writes when no config file was found.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configName+".yaml"), nil
}

// initLogging maps --verbose and -v to a zerolog level:
// 0 => Error, 1 => Info, 2+ or --verbose => Debug.
func initLogging() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    viper.GetBool("no_color"),
	}).With().Timestamp().Logger()

	switch {
	case verbose || verbosityCount >= 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case verbosityCount == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
}
