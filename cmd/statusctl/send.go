package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/RuneStatus_Go/internal/domain"
)

func sendCmd(client func() *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "send <kind> <file.json|->",
		Short: "Post an update body, as the game client would",
		Long:  "Post an update body. kind is one of: " + kindList() + ". Use - to read the body from stdin.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			body, err := readBody(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}
			if !json.Valid(body) {
				return fmt.Errorf("%s is not valid JSON", args[1])
			}

			if err := client().Send(context.Background(), kind, body); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %s update\n", kind)
			return nil
		},
	}
}

func parseKind(raw string) (domain.EventKind, error) {
	raw = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "_update")
	for _, k := range domain.EventKinds {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q, want one of: %s", domain.ErrUnknownEventKind, raw, kindList())
}

func kindList() string {
	names := make([]string, len(domain.EventKinds))
	for i, k := range domain.EventKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func readBody(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
