package provider

import (
	"TUI_yt_companion/infrastructure/config"
	"TUI_yt_companion/internal/core/domain"
	"TUI_yt_companion/internal/core/ports"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const pingTimeout = 5 * time.Second

// Fallback messages for non-2xx responses without an "error" field.
const (
	msgVideoInfoFailed = "Failed to fetch video information"
	msgUnknownError    = "An unknown error occurred."
	msgDownloadFailed  = "Failed to download video."
)

type backendProvider struct {
	cfg    *config.ApiConfig
	client *http.Client
	log    ports.LoggerPort
}

type errorBody struct {
	Error string `json:"error"`
}

func NewBackendProvider(cfg *config.ApiConfig, logger ports.LoggerPort) ports.BackendPort {
	return NewBackendProviderWithClient(cfg, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewBackendProviderWithClient(cfg *config.ApiConfig, client *http.Client, logger ports.LoggerPort) ports.BackendPort {
	return &backendProvider{
		cfg:    cfg,
		client: client,
		log:    logger,
	}
}

func (p *backendProvider) GetVideoInfo(ctx context.Context, url string) (domain.VideoInfo, error) {
	var info domain.VideoInfo
	err := p.post(ctx, "/video_info", map[string]string{"url": url}, msgVideoInfoFailed, &info)
	return info, err
}

func (p *backendProvider) Transcribe(ctx context.Context, url string) (domain.TranscriptResult, error) {
	var result domain.TranscriptResult
	err := p.post(ctx, "/transcribe", map[string]string{"url": url}, msgUnknownError, &result)
	return result, err
}

func (p *backendProvider) Summarize(ctx context.Context, url, apiKey string) (domain.SummaryResult, error) {
	var result domain.SummaryResult
	body := map[string]string{"url": url, "apiKey": apiKey}
	err := p.post(ctx, "/summarize", body, msgUnknownError, &result)
	return result, err
}

func (p *backendProvider) Download(ctx context.Context, url string) (domain.DownloadResult, error) {
	var result domain.DownloadResult
	err := p.post(ctx, "/download", map[string]string{"url": url}, msgDownloadFailed, &result)
	return result, err
}

// Ping probes GET / and measures the round trip. Any 2xx counts as success.
func (p *backendProvider) Ping(ctx context.Context) domain.ConnectionStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := domain.ConnectionStatus{BaseURL: p.cfg.BaseURL}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.FullURL("/"), nil)
	if err != nil {
		status.Error = err.Error()
		return status
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Warning("backend connection test failed", "base_url", p.cfg.BaseURL, "error", err.Error())
		status.Error = err.Error()
		return status
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	status.ResponseTime = time.Since(start)
	status.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !status.Success {
		status.Error = resp.Status
	}

	p.log.Info("backend connection test", "base_url", p.cfg.BaseURL, "success", status.Success, "response_time", status.ResponseTime.String())
	return status
}

// post sends payload as JSON and decodes a 2xx body into out. Transport
// failures and undecodable bodies become domain.ErrBackendUnreachable; any
// other status becomes a *domain.BackendError carrying the "error" field.
func (p *backendProvider) post(ctx context.Context, endpoint string, payload any, fallback string, out any) error {
	requestID := uuid.NewString()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.FullURL(endpoint), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	p.log.Info("backend request", "endpoint", endpoint, "request_id", requestID)
	start := time.Now()

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Error("backend request failed", err, "endpoint", endpoint, "request_id", requestID)
		return fmt.Errorf("POST %s: %w", endpoint, domain.ErrBackendUnreachable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		p.log.Error("reading backend response failed", err, "endpoint", endpoint, "request_id", requestID)
		return fmt.Errorf("POST %s: %w", endpoint, domain.ErrBackendUnreachable)
	}

	p.log.Info("backend response",
		"endpoint", endpoint,
		"request_id", requestID,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		if err := json.Unmarshal(raw, &eb); err != nil {
			// A non-JSON error page means something other than the backend answered.
			p.log.Error("backend error response is not JSON", err, "endpoint", endpoint, "status", resp.StatusCode)
			return fmt.Errorf("POST %s: %w", endpoint, domain.ErrBackendUnreachable)
		}
		msg := eb.Error
		if msg == "" {
			msg = fallback
		}
		return fmt.Errorf("POST %s: %w", endpoint, &domain.BackendError{StatusCode: resp.StatusCode, Message: msg})
	}

	if err := json.Unmarshal(raw, out); err != nil {
		p.log.Error("decoding backend response failed", err, "endpoint", endpoint, "request_id", requestID)
		return fmt.Errorf("POST %s: %w", endpoint, domain.ErrBackendUnreachable)
	}
	return nil
}
