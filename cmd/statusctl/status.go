package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/osse101/RuneStatus_Go/internal/domain"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

func statusCmd(client func() *apiClient) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current player view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := client().Status(context.Background())
			if err != nil {
				return err
			}
			return printView(cmd.OutOrStdout(), view, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	return cmd
}

func printView(w io.Writer, view domain.PlayerView, output string) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)

	case outputYAML:
		// round-trip through JSON so YAML keys match the API field names
		raw, err := json.Marshal(view)
		if err != nil {
			return err
		}
		var doc map[string]interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(doc)

	case outputText:
		printSummary(w, view)
		return nil
	}
	return fmt.Errorf("unknown output format %q", output)
}

func printSummary(w io.Writer, view domain.PlayerView) {
	str := func(p *string) string {
		if p == nil {
			return "-"
		}
		return *p
	}
	num := func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprint(*p)
	}

	fmt.Fprintf(w, "Player:     %s\n", str(view.Username))
	fmt.Fprintf(w, "Login:      %s\n", str(view.LoginState))
	if view.Position != nil {
		fmt.Fprintf(w, "Position:   %d, %d (plane %d)\n", view.Position.X, view.Position.Y, view.Position.Plane)
	}
	if view.Stats != nil {
		fmt.Fprintf(w, "Combat:     %d (%d skills)\n", view.Stats.CombatLevel, len(view.Stats.StatChanges))
	}
	fmt.Fprintf(w, "Quests:     %s/%s done, %s QP\n", num(view.QuestsCompleted), num(view.TotalQuests), num(view.QuestPoints))
	fmt.Fprintf(w, "Overhead:   %s\n", str(view.Overhead))
	fmt.Fprintf(w, "Skull:      %s\n", num(view.Skull))
	fmt.Fprintf(w, "Last death: %s\n", str(view.LastDeathTime))

	if len(view.Inventory) > 0 {
		fmt.Fprintln(w, "Inventory:")
		for _, it := range view.Inventory {
			name := str(it.Name)
			if it.Name == nil {
				name = fmt.Sprintf("#%d", it.ID)
			}
			fmt.Fprintf(w, "  %dx %s\n", it.Quantity, name)
		}
	}
}
