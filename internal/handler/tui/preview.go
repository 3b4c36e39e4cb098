package tui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"TUI_yt_companion/internal/core/domain"
	"TUI_yt_companion/internal/core/preview"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var previewOwnerSeq atomic.Int64

// previewTickMsg is delivered when the debounce delay for tag has elapsed.
type previewTickMsg struct {
	owner int64
	tag   int
}

type previewLoadedMsg struct {
	owner int64
	url   string
	info  domain.VideoInfo
	err   error
}

// PreviewModel is the URL input shared by every page: typing restarts the
// debounce timer and a settled YouTube URL fetches its metadata card.
type PreviewModel struct {
	parent  *AppModel
	owner   int64
	tracker *preview.Tracker
	delay   time.Duration

	input   textinput.Model
	spinner spinner.Model

	info    *domain.VideoInfo
	err     string
	lastTag int

	// URL of the fetch the spinner is waiting for
	loading  bool
	inflight string
}

func NewPreviewModel(parent *AppModel, placeholder string) *PreviewModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusMessageStyle

	return &PreviewModel{
		parent:  parent,
		owner:   previewOwnerSeq.Add(1),
		tracker: preview.NewTracker(),
		delay:   preview.DebounceDelay,
		input:   ti,
		spinner: sp,
	}
}

func (m *PreviewModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Ready reports whether a preview is on screen, which is what gates the
// page actions.
func (m *PreviewModel) Ready() bool {
	return m.info != nil && !m.loading
}

func (m *PreviewModel) Info() *domain.VideoInfo {
	return m.info
}

func (m *PreviewModel) SetDisabled(disabled bool) {
	if disabled {
		m.input.Blur()
	} else {
		m.input.Focus()
	}
}

func (m *PreviewModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.input.Focused() {
			return nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return cmd
		}
		return tea.Batch(cmd, m.schedule(m.input.Value()))

	case previewTickMsg:
		if msg.owner != m.owner {
			return nil
		}
		decision, url := m.tracker.Fire(msg.tag)
		switch decision {
		case preview.Fetch:
			m.loading = true
			m.inflight = url
			m.err = ""
			m.info = nil
			return tea.Batch(m.spinner.Tick, m.fetch(url))
		case preview.Clear:
			m.info = nil
			m.err = ""
			m.loading = false
			m.inflight = ""
		}
		return nil

	case previewLoadedMsg:
		if msg.owner != m.owner {
			return nil
		}
		if msg.url == m.inflight {
			m.loading = false
			m.inflight = ""
		}
		if !m.tracker.Current(msg.url) {
			return nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = domain.UserMessage(msg.err)
			return nil
		}
		info := msg.info
		m.info = &info
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (m *PreviewModel) schedule(value string) tea.Cmd {
	tag := m.tracker.Input(value)
	m.lastTag = tag
	owner := m.owner
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return previewTickMsg{owner: owner, tag: tag}
	})
}

func (m *PreviewModel) fetch(url string) tea.Cmd {
	owner := m.owner
	return func() tea.Msg {
		info, err := m.parent.videoUseCase.GetVideoInfo(m.parent.appContext, url)
		return previewLoadedMsg{owner: owner, url: url, info: info, err: err}
	}
}

func (m *PreviewModel) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading video preview...\n\n")
	case m.err != "":
		b.WriteString(errorMessageStyle.Render(m.err))
		b.WriteString("\n\n")
	case m.info != nil:
		b.WriteString(renderPreviewCard(*m.info))
		b.WriteString("\n")
	}
	return b.String()
}

func renderPreviewCard(info domain.VideoInfo) string {
	var b strings.Builder
	b.WriteString(previewTitleStyle.Render(info.Title))
	b.WriteString("  ")
	b.WriteString(durationBadgeStyle.Render(info.FormattedDuration()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("By %s", info.Uploader))
	if views := info.FormattedViews(); views != "" {
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(views))
	}
	if info.Thumbnail != "" {
		b.WriteString("\n")
		b.WriteString(urlStyle.Render(info.Thumbnail))
	}
	return previewCardStyle.Render(b.String())
}
