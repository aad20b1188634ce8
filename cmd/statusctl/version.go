package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/osse101/RuneStatus_Go/internal/handler"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the statusctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statusctl %s (%s, commit %s)\n",
				handler.ResolveVersion(""), runtime.Version(), handler.GitCommit)
		},
	}
}
