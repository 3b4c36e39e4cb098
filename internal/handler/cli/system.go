package cli

import (
	"errors"
	"fmt"
	"strings"

	"TUI_yt_companion/infrastructure/render"

	"github.com/spf13/cobra"
)

func (a *app) pingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := a.services.VideoUseCase.TestConnection(cmd.Context())
			if !status.Success {
				return fmt.Errorf("backend offline at %s: %s", status.BaseURL, status.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backend online at %s (%d ms)\n", status.BaseURL, status.ResponseTime.Milliseconds())
			return nil
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved API configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.services.Config
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base_url:       %s\n", cfg.BaseURL)
			fmt.Fprintf(out, "timeout:        %s\n", cfg.Timeout)
			fmt.Fprintf(out, "retry_attempts: %d\n", cfg.RetryAttempts)
			fmt.Fprintf(out, "environment:    %s\n", cfg.Environment)
			fmt.Fprintf(out, "hostname:       %s\n", cfg.Host())
			fmt.Fprintf(out, "is_docker:      %t\n", cfg.IsDocker())
			return nil
		},
	}
}

func (a *app) keyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the stored OpenRouter API key",
	}

	set := &cobra.Command{
		Use:   "set <api-key>",
		Short: "Store the API key used for summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.VideoUseCase.SaveAPIKey(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key saved")
			return nil
		},
	}

	var reveal bool
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the stored API key, masked unless --reveal is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.services.VideoUseCase.APIKey()
			if err != nil {
				return err
			}
			if key == "" {
				return errors.New("no API key configured")
			}
			if !reveal {
				key = maskKey(key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
	show.Flags().BoolVar(&reveal, "reveal", false, "print the key in full")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.services.VideoUseCase.ClearAPIKey(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed")
			return nil
		},
	}

	open := &cobra.Command{
		Use:   "open",
		Short: "Open the OpenRouter page where keys are created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Get your API key from %s\n", render.OpenRouterKeysURL)
			return a.services.Desktop.Open(render.OpenRouterKeysURL)
		},
	}

	cmd.AddCommand(set, show, clearCmd, open)
	return cmd
}

// maskKey keeps the provider prefix and the last four characters.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("•", len(key))
	}
	return key[:4] + strings.Repeat("•", len(key)-8) + key[len(key)-4:]
}
