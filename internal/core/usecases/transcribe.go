package usecases

import (
	"TUI_yt_companion/internal/core/domain"
	"context"
	"strings"
)

func (uc *videoUseCase) Transcribe(ctx context.Context, url string) (domain.TranscriptResult, error) {
	uc.log.Info("Init Transcribe")

	result, err := uc.backend.Transcribe(ctx, strings.TrimSpace(url))
	if err != nil {
		uc.log.Error("Failed to transcribe video", err)
		return domain.TranscriptResult{}, err
	}

	uc.log.Info("Transcribe completed", "chars", len(result.Transcript))
	return result, nil
}
