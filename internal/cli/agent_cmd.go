package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newAgentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage agents on the server",
	}

	cmd.AddCommand(newAgentListCmd())
	cmd.AddCommand(newAgentInfoCmd())
	cmd.AddCommand(newAgentCreateCmd())
	cmd.AddCommand(newAgentRenameCmd())
	cmd.AddCommand(newAgentDeleteCmd())
	cmd.AddCommand(newAgentCommandsCmd())
	return cmd
}

func newAgentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			agents, err := client.Agents.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range agents {
				marker := ""
				if a.Name == cfg.Agent {
					marker = " (default)"
				}
				fmt.Printf("  %s%s\n", a.Name, marker)
			}
			return nil
		},
	}
}

func newAgentInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [agent]",
		Short: "Show an agent's settings and commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.Agent
			if len(args) > 0 {
				name = args[0]
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			conf, err := client.Agents.Get(cmd.Context(), name)
			if err != nil {
				return err
			}

			fmt.Printf("Agent: %s\n", name)
			keys := make([]string, 0, len(conf.Settings))
			for k := range conf.Settings {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %-24s %v\n", k, conf.Settings[k])
			}

			if len(conf.Commands) > 0 {
				fmt.Println("Commands:")
				names := make([]string, 0, len(conf.Commands))
				for k := range conf.Commands {
					names = append(names, k)
				}
				sort.Strings(names)
				for _, k := range names {
					state := "off"
					if conf.Commands[k] {
						state = "on"
					}
					fmt.Printf("  %-40s %s\n", k, state)
				}
			}
			return nil
		},
	}
}

func newAgentCreateCmd() *cobra.Command {
	var provider string
	var trainingURLs []string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			settings := map[string]any{}
			if provider != "" {
				settings["provider"] = provider
			}

			msg, err := client.Agents.Create(cmd.Context(), args[0], settings, nil, trainingURLs)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "inference provider for the new agent")
	cmd.Flags().StringSliceVar(&trainingURLs, "training-url", nil, "URL to ingest on creation (repeatable)")
	return cmd
}

func newAgentRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name> <new-name>",
		Short: "Rename an agent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Agents.Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func newAgentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Agents.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func newAgentCommandsCmd() *cobra.Command {
	var enable, disable string

	cmd := &cobra.Command{
		Use:   "commands [agent]",
		Short: "List or toggle an agent's commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.Agent
			if len(args) > 0 {
				name = args[0]
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			if enable != "" || disable != "" {
				command, on := enable, true
				if disable != "" {
					command, on = disable, false
				}
				msg, err := client.Agents.ToggleCommand(cmd.Context(), name, command, on)
				if err != nil {
					return err
				}
				fmt.Println(msg)
				return nil
			}

			commands, err := client.Agents.Commands(cmd.Context(), name)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(commands))
			for k := range commands {
				names = append(names, k)
			}
			sort.Strings(names)
			for _, k := range names {
				state := "off"
				if commands[k] {
					state = "on"
				}
				fmt.Printf("  %-40s %s\n", k, state)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&enable, "enable", "", "enable the named command")
	cmd.Flags().StringVar(&disable, "disable", "", "disable the named command")
	return cmd
}
