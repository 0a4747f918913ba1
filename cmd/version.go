package cmd

import (
	"fmt"
	"runtime"

	"github.com/plextrac/ptimport/internal/client"
	"github.com/plextrac/ptimport/internal/output"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(output.Stdout, "ptimport v%s\n", version)
		fmt.Fprintf(output.Stdout, "  Go:       %s\n", runtime.Version())
		fmt.Fprintf(output.Stdout, "  OS/Arch:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	client.Version = version
	rootCmd.AddCommand(versionCmd)
}
