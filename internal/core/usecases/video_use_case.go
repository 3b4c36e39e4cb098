package usecases

import (
	"TUI_yt_companion/internal/core/domain"
	"TUI_yt_companion/internal/core/ports"
	"context"
)

type videoUseCase struct {
	backend ports.BackendPort
	keys    ports.KeyStorePort
	log     ports.LoggerPort
}

type VideoUseCase interface {
	GetVideoInfo(ctx context.Context, url string) (domain.VideoInfo, error)
	Transcribe(ctx context.Context, url string) (domain.TranscriptResult, error)
	Summarize(ctx context.Context, url string) (domain.SummaryResult, error)
	SummarizeWithKey(ctx context.Context, url, apiKey string) (domain.SummaryResult, error)
	Download(ctx context.Context, input string) (domain.DownloadResult, error)
	TestConnection(ctx context.Context) domain.ConnectionStatus

	APIKey() (string, error)
	SaveAPIKey(key string) error
	ClearAPIKey() error
}

func NewVideoUseCase(backend ports.BackendPort, keys ports.KeyStorePort, logger ports.LoggerPort) VideoUseCase {
	return &videoUseCase{
		backend: backend,
		keys:    keys,
		log:     logger,
	}
}
