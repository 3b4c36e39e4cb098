package tui

import (
	"fmt"
	"strings"

	"TUI_yt_companion/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type connectionCheckedMsg struct {
	status domain.ConnectionStatus
}

type homeItem struct {
	label       string
	description string
	msg         tea.Msg
}

type HomeModel struct {
	parent *AppModel
	items  []homeItem
	cursor int

	checking   bool
	connection *domain.ConnectionStatus
	spinner    spinner.Model
	hasAPIKey  bool
}

func NewHomeModel(parent *AppModel) *HomeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	m := &HomeModel{
		parent: parent,
		items: []homeItem{
			{"Transcribe", "Convert YouTube videos to accurate text transcripts", showTranscribeMsg{}},
			{"Summarize", "Get an AI summary of a video's content", showSummarizeMsg{}},
			{"Download", "Save a video on the backend server", showDownloadMsg{}},
			{"API key", "Configure your OpenRouter API key", showAPIKeyMsg{}},
		},
		spinner: sp,
	}
	m.refreshKeyStatus()
	return m
}

func (m *HomeModel) Init() tea.Cmd {
	m.checking = true
	return tea.Batch(m.spinner.Tick, m.checkConnection())
}

func (m *HomeModel) checkConnection() tea.Cmd {
	return func() tea.Msg {
		return connectionCheckedMsg{status: m.parent.videoUseCase.TestConnection(m.parent.appContext)}
	}
}

func (m *HomeModel) refreshKeyStatus() {
	key, err := m.parent.videoUseCase.APIKey()
	m.hasAPIKey = err == nil && key != ""
}

func (m *HomeModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case connectionCheckedMsg:
		m.checking = false
		status := msg.status
		m.connection = &status
		return nil

	case spinner.TickMsg:
		if !m.checking {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "ctrl+r":
			if !m.checking {
				return m.Init()
			}
		case "q":
			return m.parent.send(tea.KeyMsg{Type: tea.KeyCtrlC})
		case "enter":
			return m.parent.send(m.items[m.cursor].msg)
		}
	}
	return nil
}

func (m *HomeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("YouTube Companion"))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Your all-in-one YouTube content processing terminal"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(selectedListItemStyle.Render(item.label))
		} else {
			b.WriteString(listItemStyle.Render(item.label))
		}
		b.WriteString("  ")
		b.WriteString(promptStyle.Render(item.description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.connectionLine())
	b.WriteString("\n")
	if m.hasAPIKey {
		b.WriteString(statusMessageStyle.Render("API key configured"))
	} else {
		b.WriteString(promptStyle.Render("No API key configured (needed for summaries)"))
	}
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render("↑/↓ to navigate, Enter to select, Ctrl+R to re-test the backend, Esc or q to quit."))
	return docStyle.Render(b.String())
}

func (m *HomeModel) connectionLine() string {
	base := m.parent.apiConfig.BaseURL
	switch {
	case m.checking:
		return fmt.Sprintf("%s Checking backend at %s...", m.spinner.View(), base)
	case m.connection == nil:
		return promptStyle.Render("Backend: " + base)
	case m.connection.Success:
		return statusMessageStyle.Render(fmt.Sprintf("Backend online at %s (%d ms)", base, m.connection.ResponseTime.Milliseconds()))
	default:
		return errorMessageStyle.Render(fmt.Sprintf("Backend offline at %s: %s", base, m.connection.Error))
	}
}
