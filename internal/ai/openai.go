package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OpenAIConfig holds credentials and model selection for the OpenAI client.
type OpenAIConfig struct {
	APIKey         string
	ImageModel     string // e.g. "dall-e-3"
	EmbeddingModel string // e.g. "text-embedding-3-small"
	BaseURL        string
}

// OpenAI is a client for the OpenAI REST API, used for DALL-E image
// generation (POST /v1/images/generations) and text embeddings
// (POST /v1/embeddings).
type OpenAI struct {
	config OpenAIConfig
	client *http.Client
}

// NewOpenAI creates an OpenAI client, constructed once and reused.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "dall-e-3"
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "text-embedding-3-small"
	}
	return &OpenAI{
		config: cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

// Configured reports whether an OpenAI API key is present.
func (o *OpenAI) Configured() bool { return o.config.APIKey != "" }

// ImageOptions control DALL-E generation parameters. Zero values take
// the defaults suited for blog header images.
type ImageOptions struct {
	Size    string // default "1792x1024" (wide blog header)
	Quality string // default "standard"
	Style   string // default "vivid"
}

// GenerateImage creates one image from the prompt and returns the
// provider-hosted URL of the result.
func (o *OpenAI) GenerateImage(ctx context.Context, promptText string, opts ImageOptions) (string, error) {
	if !o.Configured() {
		return "", ErrNotConfigured
	}

	if opts.Size == "" {
		opts.Size = "1792x1024"
	}
	if opts.Quality == "" {
		opts.Quality = "standard"
	}
	if opts.Style == "" {
		opts.Style = "vivid"
	}

	body := openAIImageRequest{
		Model:   o.config.ImageModel,
		Prompt:  promptText,
		N:       1,
		Size:    opts.Size,
		Quality: opts.Quality,
		Style:   opts.Style,
	}

	respBody, err := o.post(ctx, "/images/generations", body)
	if err != nil {
		return "", err
	}

	var result openAIImageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("openai image unmarshal: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", fmt.Errorf("openai: no image URL in response")
	}
	return result.Data[0].URL, nil
}

// GenerateEmbedding converts text into a fixed-length numeric vector
// suitable for similarity search.
func (o *OpenAI) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	if !o.Configured() {
		return nil, ErrNotConfigured
	}

	body := openAIEmbeddingRequest{
		Model:          o.config.EmbeddingModel,
		Input:          text,
		EncodingFormat: "float",
	}

	respBody, err := o.post(ctx, "/embeddings", body)
	if err != nil {
		return nil, err
	}

	var result openAIEmbeddingResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("openai embedding unmarshal: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("openai: no embedding in response")
	}
	return result.Data[0].Embedding, nil
}

// post performs an authenticated JSON POST and returns the raw body of
// a 200 response. Non-200 responses become UpstreamError.
func (o *OpenAI) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("openai marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("openai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.config.APIKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Provider: "openai", StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	return respBody, nil
}

// --- OpenAI API types ---

type openAIImageRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size"`
	Quality string `json:"quality"`
	Style   string `json:"style"`
}

type openAIImageResponse struct {
	Data []openAIImageData `json:"data"`
}

type openAIImageData struct {
	URL string `json:"url"`
}

type openAIEmbeddingRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	EncodingFormat string `json:"encoding_format"`
}

type openAIEmbeddingResponse struct {
	Data []openAIEmbeddingData `json:"data"`
}

type openAIEmbeddingData struct {
	Embedding []float64 `json:"embedding"`
}
