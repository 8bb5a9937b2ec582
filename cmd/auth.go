package cmd

import (
	"fmt"

	"github.com/skilllens/skilllens-cli/pkg/api"
	"github.com/skilllens/skilllens-cli/pkg/config"
	"github.com/skilllens/skilllens-cli/pkg/input"
	"github.com/skilllens/skilllens-cli/pkg/session"
	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
)

func NewLoginCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cfg)
		},
	}
	addCredentialFlags(cmd)
	return cmd
}

func NewRegisterCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a SkillLens account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cfg)
		},
	}
	addCredentialFlags(cmd)
	return cmd
}

func NewLogoutCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewStore(cfg.State.Dir)
			if err := store.ClearToken(); err != nil {
				return err
			}
			if err := store.ClearResult(); err != nil {
				return err
			}
			printSuccess("Logged out")
			return nil
		},
	}
}

func NewWhoamiCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := session.NewStore(cfg.State.Dir)
			id, err := store.Identity()
			if err != nil {
				return err
			}
			if id.Email != "" {
				fmt.Printf("Logged in as %s\n", id.Email)
			} else {
				fmt.Println("Logged in (token holds no email claim)")
			}
			if !id.ExpiresAt.IsZero() {
				fmt.Printf("Token expires %s\n", id.ExpiresAt.Format("Jan 2, 2006 15:04 MST"))
			}
			return nil
		},
	}
}

func addCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&authEmail, "email", "", "Account email")
	cmd.Flags().StringVar(&authPassword, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func runLogin(cfg *config.Config) error {
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	token, err := client.Login(authEmail, authPassword)
	if err != nil {
		printError("Login failed")
		return err
	}

	store := session.NewStore(cfg.State.Dir)
	if err := store.SetToken(token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	printSuccess(fmt.Sprintf("Logged in as %s", authEmail))
	return nil
}

func runRegister(cfg *config.Config) error {
	// Weak passwords are refused before any request is made.
	if input.CheckPassword(authPassword) == input.PasswordWeak {
		return fmt.Errorf("password too weak: use at least 8 characters with a digit, an uppercase letter, or a special character")
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	if err := client.Register(authEmail, authPassword); err != nil {
		printError("Registration failed")
		return err
	}

	printSuccess("Account created successfully! Run 'skilllens login' to sign in.")
	return nil
}
