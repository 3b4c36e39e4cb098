package tui

import (
	"TUI_yt_companion/internal/core/domain"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// rows kept for the title, input, preview card and help line
const resultChrome = 18

func newResultViewport(parent *AppModel) viewport.Model {
	vp := viewport.New(parent.contentWidth(), 10)
	resizeResultViewport(&vp, parent)
	return vp
}

func resizeResultViewport(vp *viewport.Model, parent *AppModel) {
	vp.Width = parent.contentWidth()
	height := parent.height - resultChrome
	if height < 5 {
		height = 5
	}
	vp.Height = height
}

func copyStatus(parent *AppModel, text, success string) string {
	if err := parent.desktop.Copy(text); err != nil {
		parent.logger.Error("Failed to copy to clipboard", err)
		return msgCopyFailed
	}
	return success
}

func openVideo(parent *AppModel, p *PreviewModel) tea.Cmd {
	info := p.Info()
	if info == nil {
		return nil
	}
	url := p.Value()
	if info.ID != "" {
		url = domain.WatchURL(info.ID)
	}
	return func() tea.Msg {
		if err := parent.desktop.Open(url); err != nil {
			parent.logger.Error("Failed to open browser", err, "url", url)
		}
		return nil
	}
}
