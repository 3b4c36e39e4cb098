// Package cli exposes the companion as cobra commands. Without a sub-command
// it starts the interactive terminal client.
package cli

import (
	"fmt"
	"os"

	"TUI_yt_companion/infrastructure/config"
	"TUI_yt_companion/infrastructure/key_manager"
	"TUI_yt_companion/infrastructure/logger"
	"TUI_yt_companion/infrastructure/provider"
	"TUI_yt_companion/infrastructure/render"
	"TUI_yt_companion/internal/core/usecases"
	"TUI_yt_companion/internal/handler/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const logPrefix = "ytcompanion"

// Options are the persistent flags. Empty values fall back to the
// environment (and .env) or to the built-in defaults.
type Options struct {
	APIBaseURL string
	Origin     string
	KeyFile    string
	LogDir     string
}

type Services struct {
	Config       *config.ApiConfig
	VideoUseCase usecases.VideoUseCase
	Desktop      render.Desktop
	Logger       logger.Logger
}

// Builder turns the parsed flags into the services the commands run on.
type Builder func(opts Options) (*Services, error)

// Wire builds the production services: file logger, resolved API config,
// key file and HTTP backend provider.
func Wire(opts Options) (*Services, error) {
	appLogger, err := logger.NewFileLogger(opts.LogDir, logPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load(opts.lookup(os.LookupEnv))
	if err != nil {
		appLogger.Error("Failed to load API configuration", err)
		appLogger.Close()
		return nil, err
	}
	cfg.Debug(appLogger)

	keyFile := opts.KeyFile
	if keyFile == "" {
		keyFile = key_manager.DefaultKeyFilePath()
	}
	keyService := key_manager.NewKeyService(keyFile)
	backend := provider.NewBackendProvider(cfg, appLogger)

	return &Services{
		Config:       cfg,
		VideoUseCase: usecases.NewVideoUseCase(backend, keyService, appLogger),
		Desktop:      render.NewSystemDesktop(),
		Logger:       appLogger,
	}, nil
}

// lookup lets flags win over the environment.
func (o Options) lookup(env config.Lookup) config.Lookup {
	return func(key string) (string, bool) {
		switch {
		case key == config.EnvAPIBaseURL && o.APIBaseURL != "":
			return o.APIBaseURL, true
		case key == config.EnvOrigin && o.Origin != "":
			return o.Origin, true
		}
		return env(key)
	}
}

type app struct {
	build    Builder
	opts     Options
	services *Services
}

// NewRootCommand assembles the command tree. Services are built lazily once
// flags are parsed and closed after the command ran, whether it failed or not.
func NewRootCommand(build Builder) *cobra.Command {
	a := &app{build: build}

	root := &cobra.Command{
		Use:   "ytcompanion",
		Short: "Transcribe, summarize and download YouTube videos through the companion backend",
		Long: `A terminal client for the YouTube companion backend.

Run without arguments for the interactive client, or use a sub-command for
scripting. The backend location is resolved from API_BASE_URL, APP_ENVIRONMENT,
DOCKER and APP_ORIGIN (a .env file in the working directory is honoured).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			services, err := a.build(a.opts)
			if err != nil {
				return err
			}
			a.services = services
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.APIBaseURL, "api-base-url", "", "backend base URL (default: from API_BASE_URL or resolved from the environment)")
	flags.StringVar(&a.opts.Origin, "origin", "", "client origin used by the base URL heuristics (default: from APP_ORIGIN, else http://localhost)")
	flags.StringVar(&a.opts.KeyFile, "key-file", "", "file holding the OpenRouter API key (default: user config dir)")
	flags.StringVar(&a.opts.LogDir, "log-dir", "logs", "directory for JSON log files")

	root.AddCommand(
		a.infoCommand(),
		a.transcribeCommand(),
		a.summarizeCommand(),
		a.downloadCommand(),
		a.pingCommand(),
		a.configCommand(),
		a.keyCommand(),
		a.watchCommand(),
	)
	a.closeAfter(root)
	return root
}

// closeAfter wraps every runnable command so the services are released on
// the error path too; cobra skips the post-run hooks when RunE fails.
func (a *app) closeAfter(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			defer a.close()
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		a.closeAfter(sub)
	}
}

func (a *app) close() {
	if a.services == nil {
		return
	}
	if a.services.Logger != nil {
		a.services.Logger.Close()
	}
	a.services = nil
}

func (a *app) runTUI() error {
	s := a.services
	s.Logger.Info("Application starting...")
	model := tui.NewAppModel(s.VideoUseCase, s.Config, s.Desktop, s.Logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		s.Logger.Error("Error running TUI program", err)
		return fmt.Errorf("running terminal client: %w", err)
	}
	s.Logger.Info("Application finished.")
	return nil
}
