package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	var conversation string
	var contextResults int
	var history bool

	cmd := &cobra.Command{
		Use:   "chat <message...>",
		Short: "Chat with an agent",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if history {
				return printCachedHistory(conversation)
			}
			if len(args) == 0 {
				return fmt.Errorf("message required")
			}
			input := strings.Join(args, " ")
			if conversation == "" {
				conversation = uuid.NewString()
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			reply, err := client.Agents.Chat(cmd.Context(), cfg.Agent, input, conversation, contextResults)
			if err != nil {
				return err
			}
			fmt.Println(reply)

			if db := openCache(); db != nil {
				defer db.Close()
				if err := db.Append(conversation, cfg.Agent, "user", input); err != nil {
					log.Warn().Err(err).Msg("cannot cache user message")
				}
				if err := db.Append(conversation, cfg.Agent, cfg.Agent, reply); err != nil {
					log.Warn().Err(err).Msg("cannot cache agent reply")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&conversation, "conversation", "c", "", "conversation name (default: a fresh UUID)")
	cmd.Flags().IntVar(&contextResults, "context-results", 4, "memories injected into the prompt")
	cmd.Flags().BoolVar(&history, "history", false, "print the locally cached transcript instead of chatting")
	return cmd
}

// printCachedHistory reads the local transcript store, no server round-trip.
func printCachedHistory(conversation string) error {
	if conversation == "" {
		return fmt.Errorf("--history requires --conversation")
	}
	db := openCache()
	if db == nil {
		return fmt.Errorf("transcript cache is disabled")
	}
	defer db.Close()

	messages, err := db.History(conversation, 100)
	if err != nil {
		return err
	}
	for _, m := range messages {
		fmt.Printf("[%s] %s: %s\n", m.CreatedAt, m.Role, m.Content)
	}
	return nil
}

func newInstructCmd() *cobra.Command {
	var smart bool

	cmd := &cobra.Command{
		Use:   "instruct <instruction...>",
		Short: "Send a one-shot instruction to an agent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			client, err := newClient()
			if err != nil {
				return err
			}

			var reply string
			if smart {
				reply, err = client.Agents.SmartInstruct(cmd.Context(), cfg.Agent, input)
			} else {
				reply, err = client.Agents.Instruct(cmd.Context(), cfg.Agent, input)
			}
			if err != nil {
				return err
			}
			fmt.Println(reply)
			return nil
		},
	}

	cmd.Flags().BoolVar(&smart, "smart", false, "run the multi-step Smart Instruct chain")
	return cmd
}
