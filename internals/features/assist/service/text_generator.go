package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"belajarku_backend/internals/configs"
)

// Jenis tugas yang dipahami layanan AI eksternal.
const (
	TaskSummary    = "summary"
	TaskFlashcards = "flashcards"
	TaskQuiz       = "quiz"
	TaskMindMap    = "mindmap"
	TaskTranscript = "transcript_cleanup"
	TaskChat       = "chat"
)

var AssistTasks = []string{TaskSummary, TaskFlashcards, TaskQuiz, TaskMindMap, TaskTranscript}

// TextGenerator menghasilkan teks studi dari materi user. Implementasi
// produksi memanggil layanan AI eksternal; test pakai stub.
type TextGenerator interface {
	Generate(ctx context.Context, task string, input string) (string, error)
}

type HTTPTextGenerator struct {
	Client *http.Client
	URL    string
	APIKey string
}

func NewHTTPTextGenerator() *HTTPTextGenerator {
	return &HTTPTextGenerator{
		Client: &http.Client{Timeout: 60 * time.Second},
		URL:    configs.AIAPIURL,
		APIKey: configs.AIAPIKey,
	}
}

type generateRequest struct {
	Task  string `json:"task"`
	Input string `json:"input"`
}

type generateResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

func (g *HTTPTextGenerator) Generate(ctx context.Context, task string, input string) (string, error) {
	payload, err := json.Marshal(generateRequest{Task: task, Input: input})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.URL+"/v1/generate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("panggil layanan AI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("layanan AI status %d: %s", resp.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode respons AI: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("layanan AI: %s", out.Error)
	}
	return out.Output, nil
}
