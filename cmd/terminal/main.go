package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-terminal/internal/api"
	"github.com/rxtech-lab/argo-terminal/internal/config"
	"github.com/rxtech-lab/argo-terminal/internal/logger"
	"github.com/rxtech-lab/argo-terminal/internal/session"
	"github.com/urfave/cli/v3"
)

// setup loads configuration and builds the shared dependencies for every
// CLI command.
func setup(cmd *cli.Command) (config.Config, *session.Session, *api.Client, *logger.Logger, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, nil, nil, nil, err
	}

	if apiURL := cmd.String("api-url"); apiURL != "" {
		cfg.API.BaseURL = apiURL
		if err := cfg.Validate(); err != nil {
			return config.Config{}, nil, nil, nil, err
		}
	}

	tokenPath := cmd.String("token-path")
	if tokenPath == "" {
		tokenPath = session.DefaultTokenPath()
	}

	sess, err := session.Load(tokenPath)
	if err != nil {
		return config.Config{}, nil, nil, nil, err
	}

	// The TUI owns the terminal, so logs go to a file.
	appLogger, err := logger.NewFileLogger(cfg.Log.Path)
	if err != nil {
		return config.Config{}, nil, nil, nil, err
	}

	client := api.NewClient(cfg.API, sess, appLogger)

	return cfg, sess, client, appLogger, nil
}

// runAction starts the order-entry TUI.
func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, _, client, appLogger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	a := newApp(cfg, client, appLogger)
	m := NewModel(a)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	a.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal exited with error: %w", err)
	}

	a.stop()

	return nil
}

// loginAction exchanges credentials for a bearer token and persists it.
func loginAction(ctx context.Context, cmd *cli.Command) error {
	_, sess, client, appLogger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	resp, err := client.Login(ctx, cmd.String("email"), cmd.String("password"))
	if err != nil {
		return err
	}

	if err := sess.SetToken(resp.AccessToken); err != nil {
		return err
	}

	fmt.Println("Logged in.")

	return nil
}

// registerAction creates an account on the backend.
func registerAction(ctx context.Context, cmd *cli.Command) error {
	_, _, client, appLogger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	if err := client.Register(ctx, cmd.String("email"), cmd.String("password")); err != nil {
		return err
	}

	fmt.Println("Registered. Run `argo-terminal login` to sign in.")

	return nil
}

// logoutAction drops the persisted token.
func logoutAction(ctx context.Context, cmd *cli.Command) error {
	_, sess, _, appLogger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	if err := sess.Clear(); err != nil {
		return err
	}

	fmt.Println("Logged out.")

	return nil
}

func main() {
	sharedFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the YAML config file",
		},
		&cli.StringFlag{
			Name:  "api-url",
			Usage: "Backend base URL (overrides the config file)",
		},
		&cli.StringFlag{
			Name:  "token-path",
			Usage: "Path to the persisted session token",
		},
	}

	credentialFlags := append([]cli.Flag{
		&cli.StringFlag{
			Name:     "email",
			Usage:    "Account email",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Usage:    "Account password",
			Required: true,
		},
	}, sharedFlags...)

	cmd := &cli.Command{
		Name:   "argo-terminal",
		Usage:  "Order-entry terminal for the trading backend",
		Flags:  sharedFlags,
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Sign in and persist the session token",
				Flags:  credentialFlags,
				Action: loginAction,
			},
			{
				Name:   "register",
				Usage:  "Create a backend account",
				Flags:  credentialFlags,
				Action: registerAction,
			},
			{
				Name:   "logout",
				Usage:  "Remove the persisted session token",
				Flags:  sharedFlags,
				Action: logoutAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
