package tui

import (
	"fmt"

	"TUI_yt_companion/infrastructure/config"
	"TUI_yt_companion/infrastructure/logger"
	"TUI_yt_companion/infrastructure/render"
	"TUI_yt_companion/internal/core/usecases"
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

type currentView int

const (
	viewHome currentView = iota
	viewTranscribe
	viewSummarize
	viewDownload
	viewAPIKey
)

type AppModel struct {
	videoUseCase usecases.VideoUseCase
	apiConfig    *config.ApiConfig
	desktop      render.Desktop
	logger       logger.Logger

	homeModel       *HomeModel
	transcribeModel *TranscribeModel
	summarizeModel  *SummarizeModel
	downloadModel   *DownloadModel
	apiKeyModel     *APIKeyModel

	currentView currentView
	// view the API key dialog returns to
	returnView currentView

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(
	videoUC usecases.VideoUseCase,
	apiCfg *config.ApiConfig,
	desktop render.Desktop,
	log logger.Logger,
) *AppModel {
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		videoUseCase: videoUC,
		apiConfig:    apiCfg,
		desktop:      desktop,
		logger:       log,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.homeModel = NewHomeModel(m)
	m.currentView = viewHome
	return m
}

func (m *AppModel) Init() tea.Cmd {
	m.logger.Info("Starting TUI", "base_url", m.apiConfig.BaseURL)
	return m.homeModel.Init()
}

// Navigation messages used by the pages.
type showHomeMsg struct{}
type showTranscribeMsg struct{}
type showSummarizeMsg struct{}
type showDownloadMsg struct{}
type showAPIKeyMsg struct{ reason string }
type closeAPIKeyMsg struct{ saved bool }

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *AppModel) quit() (tea.Model, tea.Cmd) {
	m.logger.Info("Quitting TUI")
	m.cancelApp()
	return m, tea.Quit
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m.quit()
		case tea.KeyEsc:
			switch m.currentView {
			case viewHome:
				return m.quit()
			case viewAPIKey:
				return m, m.send(closeAPIKeyMsg{})
			default:
				return m, m.send(showHomeMsg{})
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case showHomeMsg:
		m.currentView = viewHome
		m.homeModel = NewHomeModel(m)
		m.transcribeModel = nil
		m.summarizeModel = nil
		m.downloadModel = nil
		return m, m.homeModel.Init()

	case showTranscribeMsg:
		m.currentView = viewTranscribe
		m.transcribeModel = NewTranscribeModel(m)
		return m, m.transcribeModel.Init()

	case showSummarizeMsg:
		m.currentView = viewSummarize
		m.summarizeModel = NewSummarizeModel(m)
		return m, m.summarizeModel.Init()

	case showDownloadMsg:
		m.currentView = viewDownload
		m.downloadModel = NewDownloadModel(m)
		return m, m.downloadModel.Init()

	case showAPIKeyMsg:
		if m.currentView != viewAPIKey {
			m.returnView = m.currentView
		}
		m.currentView = viewAPIKey
		m.apiKeyModel = NewAPIKeyModel(m, msg.reason)
		return m, m.apiKeyModel.Init()

	case closeAPIKeyMsg:
		m.currentView = m.returnView
		m.apiKeyModel = nil
		if m.currentView == viewHome {
			m.homeModel.refreshKeyStatus()
		}
		if m.currentView == viewSummarize && m.summarizeModel != nil {
			m.summarizeModel.refreshKeyStatus()
			if msg.saved {
				m.summarizeModel.err = ""
			}
		}
		return m, nil
	}

	// Async results are routed to the page that owns them even when the
	// API key dialog is on top.
	switch m.currentView {
	case viewHome:
		cmd = m.homeModel.Update(msg)
	case viewTranscribe:
		cmd = m.transcribeModel.Update(msg)
	case viewSummarize:
		cmd = m.summarizeModel.Update(msg)
	case viewDownload:
		cmd = m.downloadModel.Update(msg)
	case viewAPIKey:
		cmd = m.apiKeyModel.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			cmd = tea.Batch(cmd, m.updateBackground(msg))
		}
	}
	return m, cmd
}

func (m *AppModel) updateBackground(msg tea.Msg) tea.Cmd {
	switch m.returnView {
	case viewTranscribe:
		if m.transcribeModel != nil {
			return m.transcribeModel.Update(msg)
		}
	case viewSummarize:
		if m.summarizeModel != nil {
			return m.summarizeModel.Update(msg)
		}
	case viewDownload:
		if m.downloadModel != nil {
			return m.downloadModel.Update(msg)
		}
	case viewHome:
		return m.homeModel.Update(msg)
	}
	return nil
}

func (m *AppModel) View() string {
	switch m.currentView {
	case viewHome:
		return m.homeModel.View()
	case viewTranscribe:
		return m.transcribeModel.View()
	case viewSummarize:
		return m.summarizeModel.View()
	case viewDownload:
		return m.downloadModel.View()
	case viewAPIKey:
		return m.apiKeyModel.View()
	default:
		return fmt.Sprintf("Unknown view %d", m.currentView)
	}
}

// contentWidth is the width available inside docStyle's margins.
func (m *AppModel) contentWidth() int {
	if m.width <= 0 {
		return render.TerminalWidth() - 4
	}
	return m.width - 4
}
