package usecases

import (
	"context"
	"errors"
	"io"
	"testing"

	"TUI_yt_companion/infrastructure/logger"
	"TUI_yt_companion/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	infoCalls     []string
	summarizeKeys []string
	downloadURLs  []string
	err           error
}

func (f *fakeBackend) GetVideoInfo(_ context.Context, url string) (domain.VideoInfo, error) {
	f.infoCalls = append(f.infoCalls, url)
	if f.err != nil {
		return domain.VideoInfo{}, f.err
	}
	return domain.VideoInfo{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up"}, nil
}

func (f *fakeBackend) Transcribe(_ context.Context, url string) (domain.TranscriptResult, error) {
	if f.err != nil {
		return domain.TranscriptResult{}, f.err
	}
	return domain.TranscriptResult{Transcript: "transcript of " + url}, nil
}

func (f *fakeBackend) Summarize(_ context.Context, url, apiKey string) (domain.SummaryResult, error) {
	f.summarizeKeys = append(f.summarizeKeys, apiKey)
	if f.err != nil {
		return domain.SummaryResult{}, f.err
	}
	return domain.SummaryResult{Transcript: "t", Summary: "**s**"}, nil
}

func (f *fakeBackend) Download(_ context.Context, url string) (domain.DownloadResult, error) {
	f.downloadURLs = append(f.downloadURLs, url)
	if f.err != nil {
		return domain.DownloadResult{}, f.err
	}
	return domain.DownloadResult{Filepath: "/downloads/video.mp4"}, nil
}

func (f *fakeBackend) Ping(context.Context) domain.ConnectionStatus {
	return domain.ConnectionStatus{Success: f.err == nil, BaseURL: "http://localhost:5001"}
}

type memoryKeys struct {
	key     string
	loadErr error
}

func (m *memoryKeys) LoadKey() (string, error) { return m.key, m.loadErr }

func (m *memoryKeys) SaveKey(key string) error {
	if key == "" {
		return domain.ErrEmptyAPIKey
	}
	m.key = key
	return nil
}

func (m *memoryKeys) DeleteKey() error {
	m.key = ""
	return nil
}

func newUseCase(backend *fakeBackend, keys *memoryKeys) VideoUseCase {
	return NewVideoUseCase(backend, keys, logger.NewWriterLogger(io.Discard))
}

func TestGetVideoInfoSkipsNonYouTubeInput(t *testing.T) {
	backend := &fakeBackend{}
	uc := newUseCase(backend, &memoryKeys{})

	_, err := uc.GetVideoInfo(context.Background(), "https://vimeo.com/123")
	assert.ErrorIs(t, err, domain.ErrNotYouTubeURL)
	assert.Empty(t, backend.infoCalls)
}

func TestGetVideoInfo(t *testing.T) {
	backend := &fakeBackend{}
	uc := newUseCase(backend, &memoryKeys{})

	info, err := uc.GetVideoInfo(context.Background(), " https://youtu.be/dQw4w9WgXcQ ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", info.ID)
	assert.Equal(t, []string{"https://youtu.be/dQw4w9WgXcQ"}, backend.infoCalls)
}

func TestTranscribePropagatesBackendError(t *testing.T) {
	backendErr := &domain.BackendError{StatusCode: 500, Message: "Failed to transcribe audio"}
	uc := newUseCase(&fakeBackend{err: backendErr}, &memoryKeys{})

	_, err := uc.Transcribe(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.Equal(t, "Failed to transcribe audio", domain.UserMessage(err))
}

func TestSummarizeRequiresAPIKey(t *testing.T) {
	backend := &fakeBackend{}
	uc := newUseCase(backend, &memoryKeys{})

	_, err := uc.Summarize(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	assert.Empty(t, backend.summarizeKeys)
}

func TestSummarizeUsesStoredKey(t *testing.T) {
	backend := &fakeBackend{}
	uc := newUseCase(backend, &memoryKeys{key: "sk-or-v1-abc"})

	result, err := uc.Summarize(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "**s**", result.Summary)
	assert.Equal(t, []string{"sk-or-v1-abc"}, backend.summarizeKeys)
}

func TestSummarizeKeyLoadFailure(t *testing.T) {
	loadErr := errors.New("permission denied")
	uc := newUseCase(&fakeBackend{}, &memoryKeys{loadErr: loadErr})

	_, err := uc.Summarize(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, loadErr)
}

func TestDownloadNormalizesInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantURL string
		wantErr error
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", nil},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", nil},
		{"bare id", "dQw4w9WgXcQ", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", nil},
		{"bad id in url", "https://www.youtube.com/watch?v=short", "", domain.ErrInvalidVideo},
		{"empty", "   ", "", domain.ErrEmptyVideoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			uc := newUseCase(backend, &memoryKeys{})

			result, err := uc.Download(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, backend.downloadURLs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/downloads/video.mp4", result.Filepath)
			assert.Equal(t, []string{tt.wantURL}, backend.downloadURLs)
		})
	}
}

func TestAPIKeyLifecycle(t *testing.T) {
	keys := &memoryKeys{}
	uc := newUseCase(&fakeBackend{}, keys)

	require.NoError(t, uc.SaveAPIKey("sk-or-v1-abc"))
	key, err := uc.APIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-or-v1-abc", key)

	assert.ErrorIs(t, uc.SaveAPIKey(""), domain.ErrEmptyAPIKey)

	require.NoError(t, uc.ClearAPIKey())
	key, err = uc.APIKey()
	require.NoError(t, err)
	assert.Empty(t, key)
}

func TestTestConnection(t *testing.T) {
	uc := newUseCase(&fakeBackend{}, &memoryKeys{})
	assert.True(t, uc.TestConnection(context.Background()).Success)

	uc = newUseCase(&fakeBackend{err: domain.ErrBackendUnreachable}, &memoryKeys{})
	assert.False(t, uc.TestConnection(context.Background()).Success)
}
