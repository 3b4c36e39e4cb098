package tui

import (
	"strings"

	"TUI_yt_companion/infrastructure/render"
	"TUI_yt_companion/internal/core/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// APIKeyModel is the OpenRouter key dialog. Esc cancels without touching the
// stored key.
type APIKeyModel struct {
	parent *AppModel
	input  textinput.Model
	reason string
	err    string
}

func NewAPIKeyModel(parent *AppModel, reason string) *APIKeyModel {
	ti := textinput.New()
	ti.Placeholder = "sk-or-v1-..."
	ti.Prompt = "> "
	ti.Width = 60
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	current, err := parent.videoUseCase.APIKey()
	if err == nil {
		ti.SetValue(current)
	}
	ti.Focus()

	return &APIKeyModel{
		parent: parent,
		input:  ti,
		reason: reason,
	}
}

func (m *APIKeyModel) Init() tea.Cmd {
	return textinput.Blink
}

// canSave mirrors the disabled Save button: blank input cannot be saved.
func (m *APIKeyModel) canSave() bool {
	return strings.TrimSpace(m.input.Value()) != ""
}

func (m *APIKeyModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "enter":
		if !m.canSave() {
			return nil
		}
		if err := m.parent.videoUseCase.SaveAPIKey(strings.TrimSpace(m.input.Value())); err != nil {
			m.err = domain.UserMessage(err)
			return nil
		}
		return m.parent.send(closeAPIKeyMsg{saved: true})
	case "ctrl+s":
		if m.input.EchoMode == textinput.EchoPassword {
			m.input.EchoMode = textinput.EchoNormal
		} else {
			m.input.EchoMode = textinput.EchoPassword
		}
		return nil
	case "ctrl+x":
		if err := m.parent.videoUseCase.ClearAPIKey(); err != nil {
			m.err = domain.UserMessage(err)
			return nil
		}
		return m.parent.send(closeAPIKeyMsg{})
	case "ctrl+o":
		return func() tea.Msg {
			if err := m.parent.desktop.Open(render.OpenRouterKeysURL); err != nil {
				m.parent.logger.Error("Failed to open browser", err, "url", render.OpenRouterKeysURL)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *APIKeyModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("OpenRouter API Key"))
	b.WriteString("\n")
	if m.reason != "" {
		b.WriteString(errorMessageStyle.Render(m.reason))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString("Get your API key from ")
	b.WriteString(urlStyle.Render(render.OpenRouterKeysURL))
	b.WriteString(promptStyle.Render(" (Ctrl+O)"))
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorMessageStyle.Render(m.err))
		b.WriteString("\n\n")
	}

	save := "Save (Enter)"
	if m.canSave() {
		b.WriteString(selectedListItemStyle.Render(save))
	} else {
		b.WriteString(listItemStyle.Render(promptStyle.Render(save)))
	}
	b.WriteString("\n\n")

	show := "show"
	if m.input.EchoMode == textinput.EchoNormal {
		show = "hide"
	}
	b.WriteString(promptStyle.Render("Ctrl+S " + show + " key, Ctrl+X remove stored key, Esc cancel."))
	return docStyle.Render(b.String())
}
