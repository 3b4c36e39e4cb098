package ports

import (
	"TUI_yt_companion/internal/core/domain"
	"context"
)

type BackendPort interface {
	GetVideoInfo(ctx context.Context, url string) (domain.VideoInfo, error)
	Transcribe(ctx context.Context, url string) (domain.TranscriptResult, error)
	Summarize(ctx context.Context, url, apiKey string) (domain.SummaryResult, error)
	Download(ctx context.Context, url string) (domain.DownloadResult, error)
	Ping(ctx context.Context) domain.ConnectionStatus
}
