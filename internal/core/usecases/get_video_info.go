package usecases

import (
	"TUI_yt_companion/internal/core/domain"
	"context"
	"fmt"
	"strings"
)

func (uc *videoUseCase) GetVideoInfo(ctx context.Context, url string) (domain.VideoInfo, error) {
	url = strings.TrimSpace(url)
	if !domain.IsValidYouTubeURL(url) {
		return domain.VideoInfo{}, fmt.Errorf("%q: %w", url, domain.ErrNotYouTubeURL)
	}

	uc.log.Info("Fetching video preview", "url", url)

	info, err := uc.backend.GetVideoInfo(ctx, url)
	if err != nil {
		uc.log.Error("Failed to fetch video preview", err, "url", url)
		return domain.VideoInfo{}, err
	}

	uc.log.Info("Video preview fetched", "id", info.ID, "title", info.Title)
	return info, nil
}

func (uc *videoUseCase) TestConnection(ctx context.Context) domain.ConnectionStatus {
	return uc.backend.Ping(ctx)
}
