package tui

import (
	"errors"
	"fmt"
	"strings"

	"TUI_yt_companion/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type downloadDoneMsg struct {
	result domain.DownloadResult
	err    error
}

type DownloadModel struct {
	parent  *AppModel
	preview *PreviewModel

	downloading bool
	spinner     spinner.Model

	// outcome of the last download, shown until the next one starts
	notice  string
	failure bool
}

func NewDownloadModel(parent *AppModel) *DownloadModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	return &DownloadModel{
		parent:  parent,
		preview: NewPreviewModel(parent, "Enter YouTube Video URL"),
		spinner: sp,
	}
}

func (m *DownloadModel) Init() tea.Cmd {
	m.parent.logger.Info("DownloadModel: initialized")
	return nil
}

func (m *DownloadModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case downloadDoneMsg:
		m.downloading = false
		m.preview.SetDisabled(false)
		if msg.err != nil {
			m.failure = true
			m.notice = downloadErrorNotice(msg.err)
			return nil
		}
		m.failure = false
		m.notice = fmt.Sprintf("Video downloaded to backend server: %s", msg.result.Filepath)
		return nil

	case spinner.TickMsg:
		if m.downloading && msg.ID == m.spinner.ID() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return cmd
		}
		return m.preview.Update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.start()
		case "ctrl+o":
			return openVideo(m.parent, m.preview)
		}
		if m.downloading {
			return nil
		}
		return m.preview.Update(msg)
	}
	return m.preview.Update(msg)
}

func (m *DownloadModel) start() tea.Cmd {
	if m.downloading || !m.preview.Ready() {
		return nil
	}
	input := m.preview.Value()
	m.downloading = true
	m.notice = ""
	m.failure = false
	m.preview.SetDisabled(true)

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		result, err := m.parent.videoUseCase.Download(m.parent.appContext, input)
		return downloadDoneMsg{result: result, err: err}
	})
}

// downloadErrorNotice prefixes backend-reported errors with "Error: ";
// validation and connection failures are shown as they are.
func downloadErrorNotice(err error) string {
	var backendErr *domain.BackendError
	if errors.As(err, &backendErr) {
		return "Error: " + backendErr.Message
	}
	return domain.UserMessage(err)
}

func (m *DownloadModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Download YouTube Video"))
	b.WriteString("\n\n")
	b.WriteString(m.preview.View())

	switch {
	case m.downloading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Downloading video...\n\n")
	case m.preview.Ready():
		b.WriteString(selectedListItemStyle.Render("Download Video (Enter)"))
		b.WriteString("\n\n")
	}

	if m.notice != "" {
		if m.failure {
			b.WriteString(errorMessageStyle.Render(m.notice))
		} else {
			b.WriteString(statusMessageStyle.Render(m.notice))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("Ctrl+O open video, Esc back."))
	return docStyle.Render(b.String())
}
