package cli

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	burnzip "github.com/burnzip/client-go"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print a fresh share secret",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := burnzip.SuggestSecret(rand.Reader)
		if err != nil {
			return err
		}
		fmt.Println(secret)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
