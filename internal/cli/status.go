package cli

import (
	"fmt"
	"strings"

	"github.com/AGiXT/go-sdk/internal/version"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server status and configuration summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("agixt %s (commit %s)\n\n", version.Version, version.Commit)

			fmt.Printf("Config:  %s\n", paths.Config)
			fmt.Printf("Data:    %s\n", paths.Data)
			fmt.Printf("Server:  %s\n", cfg.Server.URL)
			fmt.Printf("Agent:   %s\n", cfg.Agent)
			if cfg.Server.APIKey != "" {
				fmt.Println("Auth:    api key set")
			} else {
				fmt.Println("Auth:    none (run `agixt login`)")
			}
			fmt.Println()

			client, err := newClient()
			if err != nil {
				return err
			}

			providers, err := client.Providers.List(cmd.Context())
			if err != nil {
				fmt.Printf("Status:  unreachable (%v)\n", err)
				return nil
			}
			fmt.Println("Status:  online")
			fmt.Printf("Providers: %s\n", strings.Join(providers, ", "))

			agents, err := client.Agents.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range agents {
				fmt.Printf("Agent:   name=%s status=%v\n", a.Name, a.Status)
			}
			return nil
		},
	}
}
