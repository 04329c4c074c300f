package cli

import (
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/term"
)

// secretEnvVar supplies the secret non-interactively, for scripts and CI.
const secretEnvVar = "BURNZIP_SECRET"

// resolveSecret obtains the shared secret: the environment variable wins,
// otherwise the user is prompted with echo disabled. With confirm set the
// prompt is repeated and both entries must match.
func resolveSecret(confirm bool) (string, error) {
	if envSecret := os.Getenv(secretEnvVar); envSecret != "" {
		log.Debugf("Using secret from %s", secretEnvVar)
		return envSecret, nil
	}

	secret, err := readHidden("Secret: ")
	if err != nil {
		return "", err
	}

	if confirm {
		again, err := readHidden("Confirm secret: ")
		if err != nil {
			return "", err
		}
		if secret != again {
			return "", fmt.Errorf("secrets do not match")
		}
	}

	return secret, nil
}

// readHidden reads one line from the terminal with echo disabled. When
// stdin is piped it falls back to /dev/tty, so the secret never has to
// travel through the pipe.
func readHidden(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		line, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(line), nil
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		if runtime.GOOS == "windows" {
			return "", fmt.Errorf("secret must be set via %s when stdin is piped", secretEnvVar)
		}
		return "", fmt.Errorf("cannot prompt for secret: stdin is piped and /dev/tty is unavailable; set %s", secretEnvVar)
	}
	defer tty.Close()

	line, err := term.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(line), nil
}
