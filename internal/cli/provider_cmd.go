package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newProviderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "provider",
		Aliases: []string{"providers"},
		Short:   "Inspect inference providers",
	}

	cmd.AddCommand(newProviderListCmd())
	cmd.AddCommand(newProviderSettingsCmd())
	return cmd
}

func newProviderListCmd() *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List providers, optionally filtered by service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			var providers []string
			if service != "" {
				providers, err = client.Providers.ListByService(cmd.Context(), service)
			} else {
				providers, err = client.Providers.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			for _, p := range providers {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "filter by service (llm, tts, image, embeddings, transcription, translation)")
	return cmd
}

func newProviderSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings <provider>",
		Short: "Show a provider's settings and their defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			settings, err := client.Providers.Settings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(settings))
			for k := range settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %-24s %v\n", k, settings[k])
			}
			return nil
		},
	}
}

func newExtensionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extension",
		Short: "Inspect server extensions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List extensions and their commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			extensions, err := client.Extensions.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range extensions {
				fmt.Printf("%s\n", e.ExtensionName)
				for _, c := range e.Commands {
					fmt.Printf("  %s\n", c.FriendlyName)
				}
			}
			return nil
		},
	})

	return cmd
}
