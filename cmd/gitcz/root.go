package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bashhack/gitcz/internal/config"
	internalErrors "github.com/bashhack/gitcz/internal/errors"
)

// NewRootCmd builds the gitcz command. Flags override the layered
// configuration (defaults, config file, GITCZ_ environment variables)
// only when the user actually set them.
func NewRootCmd(versionInfo config.VersionInfo) *cobra.Command {
	var (
		body       bool
		noVerify   bool
		debug      bool
		logFile    string
		configPath string
		showLogo   bool
	)

	cmd := &cobra.Command{
		Use:   "gitcz [type]",
		Short: "Interactive Conventional Commits helper",
		Long: `gitcz walks you through a fuzzy-searched menu to assemble a
Conventional-Commits-formatted commit message, then runs git commit.

The optional [type] argument seeds the type menu's fuzzy search.`,
		Example: `  # Pick a type interactively, then answer the prompts
  gitcz

  # Seed the type menu with "fe" (matches feat)
  gitcz fe

  # Collect a multi-line body and skip pre-commit hooks
  gitcz -b --no-verify`,
		Version: fmt.Sprintf("%s (%s) built on %s",
			versionInfo.Version, versionInfo.Commit, versionInfo.Date),
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return internalErrors.Wrapf(internalErrors.ErrUsage,
					"accepts at most one type filter argument, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags parsed fine; errors past this point are runtime
			// failures and must not trigger the usage text
			cmd.SilenceUsage = true

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.VersionInfo = versionInfo

			if cmd.Flags().Changed("body") {
				cfg.Commit.Body = body
			}
			if cmd.Flags().Changed("no-verify") {
				cfg.Commit.NoVerify = noVerify
			}
			if cmd.Flags().Changed("debug") {
				cfg.Logging.Debug = debug
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Logging.File = logFile
			}

			app := NewApp(AppOptions{Config: cfg})

			if showLogo {
				app.ShowLogo()
				return nil
			}

			typeFilter := ""
			if len(args) == 1 {
				typeFilter = args[0]
			}

			return app.Run(cmd.Context(), typeFilter)
		},
	}

	cmd.Flags().BoolVarP(&body, "body", "b", false, "Prompt for a multi-line commit body (read until EOF)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Pass --no-verify to git commit, skipping hooks")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Path to debug log file")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/gitcz/gitcz.yaml)")
	cmd.Flags().BoolVar(&showLogo, "logo", false, "Display ASCII logo and exit")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return internalErrors.Wrap(internalErrors.ErrUsage, err.Error())
	})

	return cmd
}
