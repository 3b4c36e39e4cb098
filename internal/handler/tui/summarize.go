package tui

import (
	"errors"
	"strings"

	"TUI_yt_companion/infrastructure/render"
	"TUI_yt_companion/internal/core/domain"
	"TUI_yt_companion/internal/core/markdown"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	msgSummaryCopied   = "Summary copied to clipboard!"
	msgPlainTextCopied = "Plain text copied to clipboard!"
	msgMarkdownCopied  = "Markdown copied to clipboard!"
)

type summarizeDoneMsg struct {
	result domain.SummaryResult
	err    error
}

type SummarizeModel struct {
	parent  *AppModel
	preview *PreviewModel

	loading  bool
	spinner  spinner.Model
	result   *domain.SummaryResult
	raw      bool
	viewport viewport.Model

	hasAPIKey bool

	err    string
	status string
}

func NewSummarizeModel(parent *AppModel) *SummarizeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	return &SummarizeModel{
		parent:   parent,
		preview:  NewPreviewModel(parent, "e.g., https://www.youtube.com/watch?v=dQw4w9WgXcQ"),
		spinner:  sp,
		viewport: newResultViewport(parent),
	}
}

func (m *SummarizeModel) Init() tea.Cmd {
	m.parent.logger.Info("SummarizeModel: initialized")
	m.refreshKeyStatus()
	return nil
}

func (m *SummarizeModel) refreshKeyStatus() {
	key, err := m.parent.videoUseCase.APIKey()
	m.hasAPIKey = err == nil && key != ""
}

func (m *SummarizeModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case summarizeDoneMsg:
		m.loading = false
		m.preview.SetDisabled(false)
		if msg.err != nil {
			m.err = domain.UserMessage(msg.err)
			if errors.Is(msg.err, domain.ErrMissingAPIKey) {
				return m.parent.send(showAPIKeyMsg{reason: m.err})
			}
			return nil
		}
		result := msg.result
		m.result = &result
		m.refreshContent()
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
		m.refreshContent()
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.start()
		case "ctrl+k":
			return m.parent.send(showAPIKeyMsg{})
		case "ctrl+o":
			return openVideo(m.parent, m.preview)
		case "ctrl+r":
			if m.result != nil {
				m.raw = !m.raw
				m.refreshContent()
			}
			return nil
		case "ctrl+y":
			if m.result != nil {
				m.status = copyStatus(m.parent, m.result.Summary, msgSummaryCopied)
			}
			return nil
		case "ctrl+p":
			if m.result != nil {
				m.status = copyStatus(m.parent, markdown.ToPlainText(m.result.Summary), msgPlainTextCopied)
			}
			return nil
		case "ctrl+u":
			if m.result != nil {
				m.status = copyStatus(m.parent, m.result.Summary, msgMarkdownCopied)
			}
			return nil
		case "ctrl+t":
			if m.result != nil && m.result.Transcript != "" {
				m.status = copyStatus(m.parent, m.result.Transcript, msgTranscriptCopied)
			}
			return nil
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

func (m *SummarizeModel) start() tea.Cmd {
	if m.loading || !m.preview.Ready() {
		return nil
	}
	url := m.preview.Value()
	m.loading = true
	m.err = ""
	m.status = ""
	m.result = nil
	m.viewport.SetContent("")
	m.preview.SetDisabled(true)

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := m.parent.videoUseCase.Summarize(m.parent.appContext, url)
		return summarizeDoneMsg{result: result, err: err}
	})
}

// refreshContent renders the summary followed by the transcript into the
// viewport, formatted with glamour unless the raw toggle is on.
func (m *SummarizeModel) refreshContent() {
	if m.result == nil {
		return
	}
	summary := m.result.Summary
	if !m.raw {
		rendered, err := render.Markdown(summary, m.viewport.Width)
		if err != nil {
			m.parent.logger.Error("Failed to render summary", err)
		} else {
			summary = rendered
		}
	}

	var b strings.Builder
	b.WriteString(summary)
	if m.result.Transcript != "" {
		b.WriteString("\n\n")
		b.WriteString(sectionTitleStyle.Render("Full Transcript"))
		b.WriteString("\n")
		b.WriteString(m.result.Transcript)
	}
	m.viewport.SetContent(b.String())
}

func (m *SummarizeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Summarize Video"))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Get an AI summary of a video's content"))
	b.WriteString("\n")
	if m.hasAPIKey {
		b.WriteString(statusMessageStyle.Render("API key configured"))
	} else {
		b.WriteString(errorMessageStyle.Render("API key required (Ctrl+K)"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.preview.View())

	if m.err != "" {
		b.WriteString(errorMessageStyle.Render(m.err))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Processing and summarizing...\n\n")
	case m.preview.Ready():
		b.WriteString(selectedListItemStyle.Render("Summarize (Enter)"))
		b.WriteString("\n\n")
	}

	if m.result != nil {
		mode := "Formatted"
		if m.raw {
			mode = "Raw"
		}
		b.WriteString(sectionTitleStyle.Render("Summary"))
		b.WriteString("  ")
		b.WriteString(durationBadgeStyle.Render(mode))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusMessageStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Ctrl+Y copy summary, Ctrl+P copy plain text, Ctrl+U copy markdown, Ctrl+T copy transcript."))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Ctrl+R formatted/raw, Ctrl+K API key, Ctrl+O open video, PgUp/PgDn scroll, Esc back."))
	return docStyle.Render(b.String())
}
