// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"brandpress/internal/ai"
	"brandpress/internal/prompt"
	"brandpress/internal/slug"
)

// defaultExcerptLength bounds generated excerpts when the client does
// not ask for a specific length.
const defaultExcerptLength = 300

// maxSlugLen caps suggested slugs at a search-friendly length.
const maxSlugLen = 80

// TextGenerator produces SEO metadata, excerpts, and article drafts.
type TextGenerator interface {
	Configured() bool
	GenerateSEO(ctx context.Context, title, content string) (*ai.SEOMetadata, error)
	GenerateExcerpt(ctx context.Context, content string, maxLength int) (string, error)
	GenerateBlogDraft(ctx context.Context, topic string, keywords []string, outline string) (string, error)
}

// ImageGenerator runs the full image pipeline including fallbacks.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ai.ImageRequest) (*ai.ImageResult, error)
}

type configurable interface {
	Configured() bool
}

type searchStatus interface {
	Enabled() bool
}

// AI bundles the AI authoring endpoints.
type AI struct {
	text   TextGenerator
	images ImageGenerator
	hosted configurable
	search searchStatus
}

// NewAI constructs the AI handler group. hosted reports the secondary
// image provider's credential state for the status endpoint.
func NewAI(text TextGenerator, images ImageGenerator, hosted configurable, search searchStatus) *AI {
	return &AI{text: text, images: images, hosted: hosted, search: search}
}

// GenerateSEO handles POST /ai/generate-seo.
func (h *AI) GenerateSEO(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	if msg := validateSEOInput(req.Title, req.Content); msg != "" {
		writeError(w, http.StatusBadRequest, "validation_error", msg)
		return
	}

	meta, err := h.text.GenerateSEO(r.Context(), req.Title, req.Content)
	if err != nil {
		writeAIFailure(w, "generate seo", err)
		return
	}
	writeJSON(w, http.StatusOK, seoResponse{
		MetaTitle:       meta.MetaTitle,
		MetaDescription: meta.MetaDescription,
		Slug:            slug.Shorten(slug.Generate(req.Title), maxSlugLen),
	})
}

// seoResponse extends the model's metadata with a URL slug suggestion
// derived from the article title.
type seoResponse struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Slug            string `json:"slug"`
}

// GenerateExcerpt handles POST /ai/generate-excerpt.
func (h *AI) GenerateExcerpt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content   string `json:"content"`
		MaxLength int    `json:"maxLength"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	if msg := validateExcerptInput(req.Content, req.MaxLength); msg != "" {
		writeError(w, http.StatusBadRequest, "validation_error", msg)
		return
	}
	if req.MaxLength == 0 {
		req.MaxLength = defaultExcerptLength
	}

	excerpt, err := h.text.GenerateExcerpt(r.Context(), req.Content, req.MaxLength)
	if err != nil {
		writeAIFailure(w, "generate excerpt", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"excerpt": excerpt})
}

// GenerateBlogDraft handles POST /ai/generate-blog-draft.
func (h *AI) GenerateBlogDraft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic    string   `json:"topic"`
		Keywords []string `json:"keywords"`
		Outline  string   `json:"outline"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	if msg := validateDraftInput(req.Topic, req.Keywords, req.Outline); msg != "" {
		writeError(w, http.StatusBadRequest, "validation_error", msg)
		return
	}

	content, err := h.text.GenerateBlogDraft(r.Context(), req.Topic, req.Keywords, req.Outline)
	if err != nil {
		writeAIFailure(w, "generate blog draft", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

// imageResponse is the wire shape of a successful image generation.
type imageResponse struct {
	Method         string `json:"method"`
	Prompt         string `json:"prompt"`
	ImageURL       string `json:"imageUrl,omitempty"`
	ImageBase64    string `json:"imageBase64,omitempty"`
	MimeType       string `json:"mimeType,omitempty"`
	Fallback       bool   `json:"fallback,omitempty"`
	FallbackReason string `json:"fallbackReason,omitempty"`
	PromptFallback bool   `json:"promptFallback,omitempty"`
	Message        string `json:"message"`
}

// GenerateImage handles POST /ai/generate-image.
func (h *AI) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title          string           `json:"title"`
		Content        string           `json:"content"`
		Brand          prompt.Overrides `json:"brand"`
		Category       string           `json:"category"`
		CollectionType string           `json:"collectionType"`
		Method         string           `json:"method"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid JSON body")
		return
	}
	if msg := validateImageInput(req.Title); msg != "" {
		writeError(w, http.StatusBadRequest, "validation_error", msg)
		return
	}

	result, err := h.images.GenerateImage(r.Context(), ai.ImageRequest{
		Title:      req.Title,
		Content:    req.Content,
		Brand:      req.Brand,
		Category:   req.Category,
		Collection: req.CollectionType,
		Method:     req.Method,
	})
	if err != nil {
		writeAIFailure(w, "generate image", err)
		return
	}

	resp := imageResponse{
		Method:         result.Method,
		Prompt:         result.Prompt,
		ImageURL:       result.ImageURL,
		MimeType:       result.MimeType,
		Fallback:       result.Fallback,
		FallbackReason: result.FallbackReason,
		PromptFallback: result.PromptFallback,
		Message:        result.Message,
	}
	if len(result.ImageData) > 0 {
		resp.ImageBase64 = base64.StdEncoding.EncodeToString(result.ImageData)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Status handles GET /ai/status, reporting which capabilities have
// usable credentials.
func (h *AI) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"gemini":         h.text.Configured(),
		"openai":         h.hosted.Configured(),
		"semanticSearch": h.search.Enabled(),
	})
}

// writeAIFailure maps provider errors onto the API error envelope.
func writeAIFailure(w http.ResponseWriter, op string, err error) {
	slog.Error("ai request failed", "op", op, "error", err)

	var all *ai.AllUnavailableError
	var upstream *ai.UpstreamError
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		writeError(w, http.StatusBadRequest, "provider_unavailable", err.Error())
	case errors.Is(err, ai.ErrUnknownMethod):
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.As(err, &all):
		writeError(w, http.StatusBadGateway, "all_providers_unavailable", all.Error())
	case errors.Is(err, ai.ErrMalformedResponse):
		writeError(w, http.StatusBadGateway, "malformed_response", err.Error())
	case errors.As(err, &upstream):
		writeError(w, http.StatusBadGateway, "upstream_error", upstream.Error())
	default:
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
	}
}
