package domain

import "time"

type TranscriptResult struct {
	Transcript string `json:"transcript"`
}

type SummaryResult struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}

type DownloadResult struct {
	Message  string `json:"message,omitempty"`
	Filepath string `json:"filepath"`
}

// ConnectionStatus is the outcome of probing the backend root endpoint.
type ConnectionStatus struct {
	Success      bool
	BaseURL      string
	Error        string
	ResponseTime time.Duration
}
