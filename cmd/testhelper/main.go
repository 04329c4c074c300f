package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	burnzip "github.com/burnzip/client-go"
)

// Config carries the streams a command reads and writes, so tests can
// drive run without touching the process stdio.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// SealInput is the seal command request. Exactly one of Message or
// DataB64 selects the share mode.
type SealInput struct {
	Secret   string `json:"secret"`
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
	DataB64  string `json:"dataB64,omitempty"`
}

type SealOutput struct {
	Target   string `json:"target"`
	Embedded bool   `json:"embedded"`
}

// OpenInput is the open command request. Target is either a full share
// link or a store blob id.
type OpenInput struct {
	Secret string `json:"secret"`
	Target string `json:"target"`
}

type OpenOutput struct {
	Filename string `json:"filename"`
	IsText   bool   `json:"isText"`
	Text     string `json:"text,omitempty"`
	DataB64  string `json:"dataB64"`
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return errors.New("usage: testhelper <seal|open|suggest>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch args[1] {
	case "seal":
		return runSeal(ctx, cfg)
	case "open":
		return runOpen(ctx, cfg)
	case "suggest":
		return runSuggest(cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

// newClientFromEnv builds a client from BURNZIP_LINK_BASE and
// BURNZIP_STORE_URL. Both are optional; without a store only embedded
// shares can be sealed or opened.
func newClientFromEnv() (*burnzip.Client, error) {
	var opts []burnzip.Option

	if base := os.Getenv("BURNZIP_LINK_BASE"); base != "" {
		opts = append(opts, burnzip.WithLinkBase(base))
	}

	if storeURL := os.Getenv("BURNZIP_STORE_URL"); storeURL != "" {
		store, err := burnzip.NewHTTPStore(storeURL)
		if err != nil {
			return nil, fmt.Errorf("create store: %w", err)
		}
		opts = append(opts, burnzip.WithStore(store))
	}

	return burnzip.New(opts...)
}

func runSeal(ctx context.Context, cfg Config) error {
	var input SealInput
	if err := json.NewDecoder(cfg.Stdin).Decode(&input); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if input.Message != "" && input.DataB64 != "" {
		return errors.New("provide message or dataB64, not both")
	}

	client, err := newClientFromEnv()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	share := client.NewShare()

	if input.Message != "" {
		if err := share.Compose(burnzip.ShareModeMessage); err != nil {
			return err
		}
		if err := share.SetMessage(input.Message); err != nil {
			return err
		}
	} else {
		data, err := base64.StdEncoding.DecodeString(input.DataB64)
		if err != nil {
			return fmt.Errorf("decode dataB64: %w", err)
		}
		if err := share.Compose(burnzip.ShareModeFile); err != nil {
			return err
		}
		if err := share.SetFile(input.Filename, data); err != nil {
			return err
		}
	}
	if err := share.SetSecret(input.Secret); err != nil {
		return err
	}

	if err := share.Seal(ctx); err != nil {
		return fmt.Errorf("seal: %w", err)
	}

	var output SealOutput
	switch share.State() {
	case burnzip.ShareStateEmbedReady:
		output.Target = share.Link()
		output.Embedded = true
	case burnzip.ShareStateNeedsStore:
		loc, err := share.Upload(ctx)
		if err != nil {
			return fmt.Errorf("upload: %w", err)
		}
		output.Target = loc.ID()
	}

	return json.NewEncoder(cfg.Stdout).Encode(output)
}

func runOpen(ctx context.Context, cfg Config) error {
	var input OpenInput
	if err := json.NewDecoder(cfg.Stdin).Decode(&input); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	client, err := newClientFromEnv()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	loc := burnzip.ReferenceLocator(input.Target)
	if burnzip.HasSharePayload(input.Target) {
		loc = burnzip.EmbeddedLocator(input.Target)
	}

	session, err := client.Open(ctx, loc)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	payload, err := session.Unlock(ctx, input.Secret)
	if err != nil {
		return fmt.Errorf("unlock: %w", err)
	}

	output := OpenOutput{
		Filename: payload.Filename,
		IsText:   payload.IsText(),
		DataB64:  base64.StdEncoding.EncodeToString(payload.Data),
	}
	if output.IsText {
		output.Text = payload.Text()
	}

	return json.NewEncoder(cfg.Stdout).Encode(output)
}

func runSuggest(cfg Config) error {
	secret, err := burnzip.SuggestSecret(rand.Reader)
	if err != nil {
		return fmt.Errorf("suggest secret: %w", err)
	}
	return json.NewEncoder(cfg.Stdout).Encode(map[string]string{"secret": secret})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
