package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	burnzip "github.com/burnzip/client-go"
)

var openOut string

func init() {
	openCmd.Flags().StringVarP(&openOut, "out", "o", "", "write the content to this path")

	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <link-or-id>",
	Short: "Decrypt a share and print or save its content",
	Long: `Open takes a share link, or a bare blob id for shares that went through
a store, asks for the secret and decrypts the content. Text is printed to
stdout; anything else is written to the filename the share carries, or to
--out.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient()
		if err != nil {
			return err
		}

		target := args[0]
		var loc burnzip.Locator
		if burnzip.HasSharePayload(target) {
			loc = burnzip.EmbeddedLocator(target)
		} else {
			log.Debugf("No share fragment in %q, treating it as a blob id", target)
			loc = burnzip.ReferenceLocator(target)
		}

		session, err := client.Open(cmd.Context(), loc)
		if err != nil {
			if errors.Is(err, burnzip.ErrStoreRequired) {
				return fmt.Errorf("%q looks like a blob id but no store is configured: set store.base_url", target)
			}
			return err
		}

		payload, err := unlockWithRetry(cmd, session)
		if err != nil {
			return err
		}

		if openOut == "" && payload.IsText() {
			fmt.Println(payload.Text())
			return nil
		}

		path := openOut
		if path == "" {
			path = payload.Filename
		}
		if err := os.WriteFile(path, payload.Data, 0o600); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Wrote", path)
		return nil
	},
}

// unlockWithRetry prompts for the secret and attempts decryption, allowing
// a couple of fresh guesses in interactive use. With the secret pinned by
// the environment a retry would only repeat the same guess, so the first
// failure is final.
func unlockWithRetry(cmd *cobra.Command, session *burnzip.OpenSession) (*burnzip.Payload, error) {
	const maxGuesses = 3

	for attempt := 1; ; attempt++ {
		secret, err := resolveSecret(false)
		if err != nil {
			return nil, err
		}

		payload, err := session.Unlock(cmd.Context(), secret)
		if err == nil {
			return payload, nil
		}

		interactive := os.Getenv(secretEnvVar) == ""
		if interactive && attempt < maxGuesses && retryableUnlock(err) {
			log.Warnf("That secret did not open the share, try again (%d/%d)", attempt, maxGuesses)
			continue
		}
		return nil, err
	}
}

// retryableUnlock reports whether another guess can succeed: wrong secrets
// and length mistakes are recoverable, structural damage is not.
func retryableUnlock(err error) bool {
	if errors.Is(err, burnzip.ErrDecryptionFailed) {
		return true
	}
	var verr *burnzip.ValidationError
	return errors.As(err, &verr)
}
