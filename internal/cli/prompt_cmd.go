package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Manage prompt templates",
	}

	cmd.AddCommand(newPromptListCmd())
	cmd.AddCommand(newPromptShowCmd())
	cmd.AddCommand(newPromptCreateCmd())
	cmd.AddCommand(newPromptDeleteCmd())
	return cmd
}

func newPromptListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompt templates in a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			prompts, err := client.Prompts.List(cmd.Context(), category)
			if err != nil {
				return err
			}
			for _, p := range prompts {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "prompt category (default \"Default\")")
	return cmd
}

func newPromptShowCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a prompt template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			content, err := client.Prompts.Get(cmd.Context(), category, args[0])
			if err != nil {
				return err
			}
			fmt.Println(content)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "prompt category (default \"Default\")")
	return cmd
}

func newPromptCreateCmd() *cobra.Command {
	var category, file string

	cmd := &cobra.Command{
		Use:   "create <name> [content]",
		Short: "Create a prompt template from an argument or a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content string
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				content = string(data)
			case len(args) == 2:
				content = args[1]
			default:
				return fmt.Errorf("prompt content required (argument or --file)")
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Prompts.Create(cmd.Context(), category, args[0], content)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "prompt category (default \"Default\")")
	cmd.Flags().StringVar(&file, "file", "", "read prompt content from this file")
	return cmd
}

func newPromptDeleteCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a prompt template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Prompts.Delete(cmd.Context(), category, args[0])
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "prompt category (default \"Default\")")
	return cmd
}
