package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/RuneStatus_Go/internal/itemdb"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Query the item database",
	}
	cmd.AddCommand(itemsLookupCmd())
	return cmd
}

func itemsLookupCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "lookup <id>...",
		Short: "Resolve item ids to names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := itemdb.Load(context.Background(), dbPath)
			if err != nil {
				return err
			}

			for _, arg := range args {
				id, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("item id %q is not a number", arg)
				}
				name, ok := table.Name(id)
				if !ok {
					name = "(unknown)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", itemdb.DefaultPath, "Path to items-complete.json")
	return cmd
}
