package main

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	defaultServerURL = "http://localhost:80"
	envServerURL     = "RUNESTATUS_URL"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var serverURL string

	root := &cobra.Command{
		Use:           "statusctl",
		Short:         "Inspect and feed a running RuneStatus server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if env := os.Getenv(envServerURL); env != "" {
		serverURL = env
	} else {
		serverURL = defaultServerURL
	}
	root.PersistentFlags().StringVar(&serverURL, "server", serverURL, "RuneStatus base URL (env "+envServerURL+")")

	client := func() *apiClient { return newAPIClient(serverURL) }

	root.AddCommand(statusCmd(client))
	root.AddCommand(sendCmd(client))
	root.AddCommand(combatCmd())
	root.AddCommand(itemsCmd())
	root.AddCommand(versionCmd())
	return root
}
