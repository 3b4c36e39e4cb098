package domain

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sosodev/duration"
)

type VideoInfo struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Duration   float64 `json:"duration"`
	Thumbnail  string  `json:"thumbnail"`
	Uploader   string  `json:"uploader"`
	ViewCount  int64   `json:"view_count"`
	UploadDate string  `json:"upload_date"`
}

// FormattedDuration returns M:SS, or H:MM:SS for videos of an hour or more.
func (v VideoInfo) FormattedDuration() string {
	return FormatDuration(int(v.Duration))
}

// ISODuration returns the duration as an ISO-8601 string, e.g. PT3M25S.
func (v VideoInfo) ISODuration() string {
	return duration.Format(time.Duration(v.Duration * float64(time.Second)))
}

// FormattedViews returns the view count with thousands separators, or an
// empty string when the backend reported no views.
func (v VideoInfo) FormattedViews() string {
	if v.ViewCount <= 0 {
		return ""
	}
	return humanize.Comma(v.ViewCount) + " views"
}

func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	remaining := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, remaining)
	}
	return fmt.Sprintf("%d:%02d", minutes, remaining)
}
