package usecases

import (
	"TUI_yt_companion/internal/core/domain"
	"context"
	"strings"
)

// Download accepts a full YouTube URL or a bare video id. The backend always
// receives the canonical watch URL.
func (uc *videoUseCase) Download(ctx context.Context, input string) (domain.DownloadResult, error) {
	uc.log.Info("Init Download")

	videoID := strings.TrimSpace(input)
	if domain.IsValidYouTubeURL(videoID) {
		extracted, ok := domain.ExtractVideoID(videoID)
		if !ok {
			return domain.DownloadResult{}, domain.ErrInvalidVideo
		}
		videoID = extracted
	}

	if videoID == "" {
		return domain.DownloadResult{}, domain.ErrEmptyVideoInput
	}

	url := domain.WatchURL(videoID)
	result, err := uc.backend.Download(ctx, url)
	if err != nil {
		uc.log.Error("Failed to download video", err, "url", url)
		return domain.DownloadResult{}, err
	}

	uc.log.Info("Download completed", "filepath", result.Filepath)
	return result, nil
}
