package cli

import (
	"fmt"
	"strings"

	"github.com/AGiXT/go-sdk/agixt"
	"github.com/spf13/cobra"
)

func newChainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Manage and run chains",
	}

	cmd.AddCommand(newChainListCmd())
	cmd.AddCommand(newChainShowCmd())
	cmd.AddCommand(newChainRunCmd())
	cmd.AddCommand(newChainCreateCmd())
	cmd.AddCommand(newChainDeleteCmd())
	return cmd
}

func newChainListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			chains, err := client.Chains.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range chains {
				fmt.Printf("  %s\n", c)
			}
			return nil
		},
	}
}

func newChainShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a chain's steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			chain, err := client.Chains.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Chain: %s\n", chain.ChainName)
			for _, s := range chain.Steps {
				fmt.Printf("  %2d. agent=%s type=%s\n", s.Step, s.AgentName, s.PromptType)
			}
			return nil
		},
	}
}

func newChainRunCmd() *cobra.Command {
	var fromStep int
	var allResponses bool

	cmd := &cobra.Command{
		Use:   "run <name> <input...>",
		Short: "Run a chain with the given input",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			opts := &agixt.ChainRunOptions{
				AgentOverride: cfg.Agent,
				AllResponses:  allResponses,
				FromStep:      fromStep,
			}
			out, err := client.Chains.Run(cmd.Context(), args[0], strings.Join(args[1:], " "), opts)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().IntVar(&fromStep, "from-step", 1, "step to start from")
	cmd.Flags().BoolVar(&allResponses, "all-responses", false, "print every step's response, not just the last")
	return cmd
}

func newChainCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Chains.Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func newChainDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Chains.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}
