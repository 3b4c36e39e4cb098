package usecases

import (
	"TUI_yt_companion/internal/core/domain"
	"context"
	"fmt"
	"strings"
)

// Summarize uses the stored API key. Without one it fails with
// domain.ErrMissingAPIKey before contacting the backend.
func (uc *videoUseCase) Summarize(ctx context.Context, url string) (domain.SummaryResult, error) {
	apiKey, err := uc.APIKey()
	if err != nil {
		return domain.SummaryResult{}, fmt.Errorf("error while loading API key: %w", err)
	}
	return uc.SummarizeWithKey(ctx, url, apiKey)
}

func (uc *videoUseCase) SummarizeWithKey(ctx context.Context, url, apiKey string) (domain.SummaryResult, error) {
	uc.log.Info("Init Summarize")

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		uc.log.Warning("Summarize requested without an API key")
		return domain.SummaryResult{}, domain.ErrMissingAPIKey
	}

	result, err := uc.backend.Summarize(ctx, strings.TrimSpace(url), apiKey)
	if err != nil {
		uc.log.Error("Failed to summarize video", err)
		return domain.SummaryResult{}, err
	}

	uc.log.Info("Summarize completed", "summary_chars", len(result.Summary), "transcript_chars", len(result.Transcript))
	return result, nil
}
