package cli

import (
	"fmt"

	"github.com/burnzip/client-go/internal/crypto"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("burnzip %s (%s)\n", Version, crypto.AlgsCiphersuite)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
