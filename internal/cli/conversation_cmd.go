package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConversationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversation",
		Aliases: []string{"conv"},
		Short:   "Manage conversations",
	}

	cmd.AddCommand(newConversationListCmd())
	cmd.AddCommand(newConversationShowCmd())
	cmd.AddCommand(newConversationDeleteCmd())
	cmd.AddCommand(newConversationCachedCmd())
	return cmd
}

func newConversationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List conversations on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			conversations, err := client.Conversations.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range conversations {
				fmt.Printf("  %s\n", c)
			}
			return nil
		},
	}
}

func newConversationShowCmd() *cobra.Command {
	var limit, page int

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a conversation's history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			history, err := client.Conversations.Get(cmd.Context(), cfg.Agent, args[0], limit, page)
			if err != nil {
				return err
			}
			for _, m := range history {
				fmt.Printf("[%s] %s: %s\n", m.Timestamp, m.Role, m.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum messages to fetch")
	cmd.Flags().IntVar(&page, "page", 1, "page of history to fetch")
	return cmd
}

func newConversationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Conversations.Delete(cmd.Context(), cfg.Agent, args[0])
			if err != nil {
				return err
			}
			fmt.Println(msg)

			if db := openCache(); db != nil {
				defer db.Close()
				if _, err := db.DeleteConversation(args[0]); err != nil {
					log.Warn().Err(err).Msg("cannot delete cached transcript")
				}
			}
			return nil
		},
	}
}

// cached reads from the local transcript store, no server round-trip.
func newConversationCachedCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "cached [name]",
		Short: "List or show locally cached transcripts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := openCache()
			if db == nil {
				return fmt.Errorf("transcript cache is disabled")
			}
			defer db.Close()

			if len(args) == 0 {
				conversations, err := db.Conversations()
				if err != nil {
					return err
				}
				for _, c := range conversations {
					fmt.Printf("  %s\n", c)
				}
				return nil
			}

			history, err := db.History(args[0], limit)
			if err != nil {
				return err
			}
			for _, m := range history {
				fmt.Printf("[%s] %s: %s\n", m.CreatedAt, m.Role, m.Content)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "maximum messages to show")
	return cmd
}
