package tui

import (
	"strings"

	"TUI_yt_companion/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgTranscriptCopied = "Transcript copied to clipboard!"
	msgCopyFailed       = "Failed to copy to clipboard"
)

type transcribeDoneMsg struct {
	result domain.TranscriptResult
	err    error
}

type TranscribeModel struct {
	parent  *AppModel
	preview *PreviewModel

	loading    bool
	spinner    spinner.Model
	transcript string
	viewport   viewport.Model

	err    string
	status string
}

func NewTranscribeModel(parent *AppModel) *TranscribeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	return &TranscribeModel{
		parent:   parent,
		preview:  NewPreviewModel(parent, "e.g., https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
		spinner:  sp,
		viewport: newResultViewport(parent),
	}
}

func (m *TranscribeModel) Init() tea.Cmd {
	m.parent.logger.Info("TranscribeModel: initialized")
	return nil
}

func (m *TranscribeModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case transcribeDoneMsg:
		m.loading = false
		m.preview.SetDisabled(false)
		if msg.err != nil {
			m.err = domain.UserMessage(msg.err)
			return nil
		}
		m.transcript = msg.result.Transcript
		m.viewport.SetContent(m.transcript)
		m.viewport.GotoTop()
		return nil

	case spinner.TickMsg:
		if m.loading && msg.ID == m.spinner.ID() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
		return m.preview.Update(msg)

	case tea.WindowSizeMsg:
		resizeResultViewport(&m.viewport, m.parent)
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.start()
		case "ctrl+y":
			if m.transcript == "" {
				return nil
			}
			m.status = copyStatus(m.parent, m.transcript, msgTranscriptCopied)
			return nil
		case "ctrl+o":
			return openVideo(m.parent, m.preview)
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
		if m.loading {
			return nil
		}
		m.status = ""
		return m.preview.Update(msg)
	}
	return m.preview.Update(msg)
}

// start runs the transcription. Like the button it replaces, it is only
// available once the preview card is shown.
func (m *TranscribeModel) start() tea.Cmd {
	if m.loading || !m.preview.Ready() {
		return nil
	}
	url := m.preview.Value()
	m.loading = true
	m.err = ""
	m.status = ""
	m.transcript = ""
	m.viewport.SetContent("")
	m.preview.SetDisabled(true)

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := m.parent.videoUseCase.Transcribe(m.parent.appContext, url)
		return transcribeDoneMsg{result: result, err: err}
	})
}

func (m *TranscribeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Transcribe Video"))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Convert YouTube videos to accurate text transcripts"))
	b.WriteString("\n\n")
	b.WriteString(m.preview.View())

	if m.err != "" {
		b.WriteString(errorMessageStyle.Render(m.err))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Processing video...\n\n")
	case m.preview.Ready():
		b.WriteString(selectedListItemStyle.Render("Get Transcript (Enter)"))
		b.WriteString("\n\n")
	}

	if m.transcript != "" {
		b.WriteString(sectionTitleStyle.Render("Transcription Result"))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusMessageStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Ctrl+Y copy transcript, Ctrl+O open video, PgUp/PgDn scroll, Esc back."))
	return docStyle.Render(b.String())
}
