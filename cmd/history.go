package cmd

import (
	"fmt"
	"strconv"

	"github.com/skilllens/skilllens-cli/pkg/api"
	"github.com/skilllens/skilllens-cli/pkg/config"
	"github.com/skilllens/skilllens-cli/pkg/formatter"
	"github.com/skilllens/skilllens-cli/pkg/session"
	"github.com/spf13/cobra"
)

func NewHistoryCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and manage stored analyses (requires login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cfg)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored analyses",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runHistoryList(cfg)
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete one stored analysis",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid history id %q", args[0])
				}
				return runHistoryDelete(cfg, id)
			},
		},
	)

	return cmd
}

func requireToken(cfg *config.Config) (string, error) {
	token := session.NewStore(cfg.State.Dir).Token()
	if token == "" {
		return "", fmt.Errorf("history requires login (run 'skilllens login')")
	}
	return token, nil
}

func runHistoryList(cfg *config.Config) error {
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	entries, err := client.History(token)
	if err != nil {
		return err
	}

	formatter.DisplayHistory(entries)
	return nil
}

func runHistoryDelete(cfg *config.Config, id int) error {
	token, err := requireToken(cfg)
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	if err := client.DeleteHistory(token, id); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Deleted analysis #%d", id))

	// Show the refreshed list so the removal is visible immediately.
	entries, err := client.History(token)
	if err != nil {
		return err
	}
	formatter.DisplayHistory(entries)
	return nil
}
