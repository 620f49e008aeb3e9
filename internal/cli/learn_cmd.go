package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AGiXT/go-sdk/agixt"
	"github.com/spf13/cobra"
)

func newLearnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Ingest content into an agent's memory",
	}

	cmd.AddCommand(newLearnTextCmd())
	cmd.AddCommand(newLearnURLCmd())
	cmd.AddCommand(newLearnFileCmd())
	cmd.AddCommand(newLearnGitHubCmd())
	cmd.AddCommand(newMemoryQueryCmd())
	cmd.AddCommand(newMemoryWipeCmd())
	return cmd
}

func newLearnTextCmd() *cobra.Command {
	var collection int

	cmd := &cobra.Command{
		Use:   "text <hint> <text...>",
		Short: "Store a snippet of text against a retrieval hint",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Memory.LearnText(cmd.Context(), cfg.Agent, args[0], strings.Join(args[1:], " "), collection)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().IntVar(&collection, "collection", 0, "memory collection number")
	return cmd
}

func newLearnURLCmd() *cobra.Command {
	var collection int

	cmd := &cobra.Command{
		Use:   "url <url>",
		Short: "Read a web page into memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Memory.LearnURL(cmd.Context(), cfg.Agent, args[0], collection)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().IntVar(&collection, "collection", 0, "memory collection number")
	return cmd
}

func newLearnFileCmd() *cobra.Command {
	var collection int

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Upload a local file into memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Memory.LearnFile(cmd.Context(), cfg.Agent, filepath.Base(args[0]), data, collection)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().IntVar(&collection, "collection", 0, "memory collection number")
	return cmd
}

func newLearnGitHubCmd() *cobra.Command {
	var branch, user, token string
	var useAgentSettings bool
	var collection int

	cmd := &cobra.Command{
		Use:   "github <owner/repo>",
		Short: "Read a GitHub repository into memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			repo := agixt.GitHubRepoOptions{
				Repo:             args[0],
				Branch:           branch,
				User:             user,
				Token:            token,
				UseAgentSettings: useAgentSettings,
			}
			msg, err := client.Memory.LearnGitHubRepo(cmd.Context(), cfg.Agent, repo, collection)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "main", "branch to read")
	cmd.Flags().StringVar(&user, "user", "", "GitHub username for private repos")
	cmd.Flags().StringVar(&token, "token", "", "GitHub token for private repos")
	cmd.Flags().BoolVar(&useAgentSettings, "use-agent-settings", false, "use credentials stored in the agent's settings")
	cmd.Flags().IntVar(&collection, "collection", 0, "memory collection number")
	return cmd
}

func newMemoryQueryCmd() *cobra.Command {
	var limit, collection int
	var minRelevance float64

	cmd := &cobra.Command{
		Use:   "query <input...>",
		Short: "Query an agent's memory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			memories, err := client.Memory.Query(cmd.Context(), cfg.Agent, strings.Join(args, " "), limit, minRelevance, collection)
			if err != nil {
				return err
			}
			for _, m := range memories {
				fmt.Printf("--- %s (score %.3f)\n%s\n", m.ID, m.RelevanceScore, m.Text)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "maximum memories to return")
	cmd.Flags().Float64Var(&minRelevance, "min-relevance", 0, "minimum relevance score")
	cmd.Flags().IntVar(&collection, "collection", 0, "memory collection number")
	return cmd
}

func newMemoryWipeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Wipe the agent's memories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to wipe %s's memories without --yes", cfg.Agent)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			msg, err := client.Memory.Wipe(cmd.Context(), cfg.Agent)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return cmd
}
