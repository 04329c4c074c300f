package cli

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	burnzip "github.com/burnzip/client-go"
)

var (
	shareMessage string
	shareFile    string
	shareSuggest bool
)

func init() {
	shareCmd.Flags().StringVarP(&shareMessage, "message", "m", "", "message text to share")
	shareCmd.Flags().StringVarP(&shareFile, "file", "f", "", "file to share")
	shareCmd.Flags().BoolVar(&shareSuggest, "suggest", false, "generate the secret instead of prompting")
	shareCmd.MarkFlagsMutuallyExclusive("message", "file")

	rootCmd.AddCommand(shareCmd)
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Seal a message or file and print its share link",
	Long: `Seal encrypts the given content behind a secret and prints the share
link, or the blob id when the package is too large to ride inside a link.
The secret comes from BURNZIP_SECRET, a hidden prompt, or --suggest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if shareMessage == "" && shareFile == "" {
			return fmt.Errorf("nothing to share: pass --message or --file")
		}

		client, err := buildClient()
		if err != nil {
			return err
		}

		var secret string
		if shareSuggest {
			secret, err = burnzip.SuggestSecret(rand.Reader)
			if err != nil {
				return err
			}
			log.Infof("Generated a fresh secret")
		} else {
			secret, err = resolveSecret(true)
			if err != nil {
				return err
			}
			if err := burnzip.ValidateSecret(secret); err != nil {
				return err
			}
		}

		share := client.NewShare()
		if shareFile != "" {
			data, err := os.ReadFile(shareFile)
			if err != nil {
				return err
			}
			log.Infof("Read %d bytes from %s", len(data), shareFile)

			if err := share.Compose(burnzip.ShareModeFile); err != nil {
				return err
			}
			if err := share.SetFile(filepath.Base(shareFile), data); err != nil {
				return err
			}
		} else {
			if err := share.Compose(burnzip.ShareModeMessage); err != nil {
				return err
			}
			if err := share.SetMessage(shareMessage); err != nil {
				return err
			}
		}
		if err := share.SetSecret(secret); err != nil {
			return err
		}

		sp, cleanup := startSpinner("Sealing...", verbose || debug)

		if err := share.Seal(cmd.Context()); err != nil {
			cleanup()
			return err
		}
		log.Infof("Package is %d bytes, transport %s", len(share.PackageBytes()), share.Transport())

		var result string
		switch share.State() {
		case burnzip.ShareStateEmbedReady:
			sp.FinalMSG = color.GreenString("✓") + " Sealed"
			result = share.Link()

		case burnzip.ShareStateNeedsStore:
			sp.Suffix = " Uploading..."
			loc, err := share.Upload(cmd.Context())
			if err != nil {
				cleanup()
				if errors.Is(err, burnzip.ErrStoreRequired) {
					return fmt.Errorf("package is %d bytes, too large to embed in a link: configure store.base_url to upload it", len(share.PackageBytes()))
				}
				return err
			}
			sp.FinalMSG = color.GreenString("✓") + " Uploaded"
			result = loc.ID()
		}

		cleanup()
		fmt.Println(result)
		if shareSuggest {
			fmt.Fprintln(os.Stderr, "Secret:", secret)
		}
		return nil
	},
}
