// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai wraps the generative AI providers used by the authoring
// endpoints: Gemini for text and native image generation, OpenAI for
// hosted image generation and embeddings. Each client talks to its
// provider's REST API directly and parses typed responses.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"brandpress/internal/prompt"
)

// GeminiConfig holds credentials and model selection for the Gemini client.
type GeminiConfig struct {
	APIKey     string
	Model      string // text model, e.g. "gemini-2.5-flash"
	ImageModel string // native image model, e.g. "gemini-2.5-flash-image"
	BaseURL    string
}

// Gemini is a client for the Google Gemini REST API
// (POST /v1beta/models/{model}:generateContent).
type Gemini struct {
	config    GeminiConfig
	client    *http.Client
	imgClient *http.Client
}

// NewGemini creates a Gemini client. The client is constructed once at
// process start and reused for every request.
func NewGemini(cfg GeminiConfig) *Gemini {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "gemini-2.5-flash-image"
	}
	return &Gemini{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
		// Image generation regularly takes longer than text.
		imgClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Configured reports whether a Gemini API key is present.
func (g *Gemini) Configured() bool { return g.config.APIKey != "" }

// Complete sends a free-form prompt to the text model and returns the
// generated text.
func (g *Gemini) Complete(ctx context.Context, promptText string) (string, error) {
	return g.generate(ctx, promptText)
}

// SEOMetadata is the structured result of GenerateSEO.
type SEOMetadata struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

const seoContentPreview = 500

// GenerateSEO asks the model for a strict JSON object with metaTitle and
// metaDescription for the article. The first {...} substring of the raw
// response is parsed; ErrMalformedResponse is returned when none exists
// or it fails to parse.
func (g *Gemini) GenerateSEO(ctx context.Context, title, content string) (*SEOMetadata, error) {
	preview := content
	if len(preview) > seoContentPreview {
		preview = preview[:seoContentPreview]
	}

	p := fmt.Sprintf(`Generate SEO metadata for this article:
Title: %s
Content preview: %s

Return ONLY a JSON object with:
- metaTitle (max 60 chars, compelling)
- metaDescription (max 160 chars, includes keywords)

JSON:`, title, preview)

	raw, err := g.generate(ctx, p)
	if err != nil {
		return nil, err
	}

	obj, ok := firstJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON object in %q", ErrMalformedResponse, truncateForError(raw))
	}

	var seo SEOMetadata
	if err := json.Unmarshal([]byte(obj), &seo); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &seo, nil
}

const excerptContentPreview = 2000

// GenerateExcerpt summarizes the content in at most maxLength characters.
// The result is hard-truncated to maxLength regardless of what the model
// returned.
func (g *Gemini) GenerateExcerpt(ctx context.Context, content string, maxLength int) (string, error) {
	preview := content
	if len(preview) > excerptContentPreview {
		preview = preview[:excerptContentPreview]
	}

	p := fmt.Sprintf(`Summarize this article in %d characters or less. Make it engaging and informative:

%s

Summary:`, maxLength, preview)

	raw, err := g.generate(ctx, p)
	if err != nil {
		return "", err
	}
	return truncateRunes(strings.TrimSpace(raw), maxLength), nil
}

// GenerateBlogDraft produces a long-form HTML article body for the topic.
// The model is instructed to emit semantic HTML only, and the output is
// normalized afterwards since models do not reliably honor the "no
// markdown" instruction.
func (g *Gemini) GenerateBlogDraft(ctx context.Context, topic string, keywords []string, outline string) (string, error) {
	var keywordsText, outlineText string
	if len(keywords) > 0 {
		keywordsText = "\nKeywords to include: " + strings.Join(keywords, ", ")
	}
	if outline != "" {
		outlineText = "\nOutline/Structure: " + outline
	}

	p := fmt.Sprintf(`Write a comprehensive, engaging blog article on the following topic:

Topic: %s%s%s

Requirements:
- Length: 1200-1500 words minimum
- Structure: Include an introduction, 3-5 main sections with H2 headings, and a conclusion
- Use H3 subheadings where appropriate for better organization
- Write in a professional but conversational tone
- Include practical insights, examples, or actionable takeaways
- Make it SEO-friendly by naturally incorporating keywords
- Use short paragraphs (2-4 sentences) for readability

IMPORTANT: Format the article in HTML with proper semantic tags:
- Use <h2> for main section headings
- Use <h3> for subsection headings
- Use <p> for paragraphs
- Use <ul> and <li> for bullet lists
- Use <strong> for emphasis
- Do NOT include <h1> tags (title is separate)
- Do NOT include <html>, <head>, or <body> tags (content only)

Return only the HTML content, ready to be inserted into a rich text editor.

Article:`, topic, keywordsText, outlineText)

	raw, err := g.generate(ctx, p)
	if err != nil {
		return "", err
	}
	return normalizeDraftHTML(raw), nil
}

// GenerateImagePrompt asks the text model to draft a detailed
// image-generation prompt from the brand-aware meta-prompt, then
// finalizes it with the deterministic uniformity suffix. The error from
// the model call propagates unchanged; the caller decides whether to
// substitute the static fallback prompt.
func (g *Gemini) GenerateImagePrompt(ctx context.Context, title, content string, ov prompt.Overrides, category, collection string) (string, error) {
	meta := prompt.ComposeMetaPrompt(title, content, ov, category, collection)
	draft, err := g.generate(ctx, meta)
	if err != nil {
		return "", err
	}
	merged := prompt.Merge(prompt.ProfileFor(collection), ov)
	return prompt.Finalize(draft, merged.Colors), nil
}

// GenerateImage creates an image with Gemini's native image model by
// requesting IMAGE response modalities. Returns the decoded image bytes
// and MIME type, or ErrNoImage when the response has no inline payload.
func (g *Gemini) GenerateImage(ctx context.Context, promptText string) ([]byte, string, error) {
	if !g.Configured() {
		return nil, "", ErrNotConfigured
	}

	body := geminiImageRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: promptText}}},
		},
		GenerationConfig: geminiImageConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("gemini image marshal: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.config.BaseURL, g.config.ImageModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("gemini image request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.config.APIKey)

	resp, err := g.imgClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("gemini image http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("gemini image read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", &UpstreamError{Provider: "gemini", StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var result geminiImageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, "", fmt.Errorf("gemini image unmarshal: %w", err)
	}

	for _, c := range result.Candidates {
		for _, part := range c.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				imgBytes, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, "", fmt.Errorf("gemini image decode base64: %w", err)
				}
				contentType := part.InlineData.MimeType
				if contentType == "" {
					contentType = "image/png"
				}
				return imgBytes, contentType, nil
			}
		}
	}

	return nil, "", ErrNoImage
}

// generate performs a text generateContent call and extracts the first
// text part of the first candidate.
func (g *Gemini) generate(ctx context.Context, promptText string) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: promptText}}},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini marshal: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.config.BaseURL, g.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.config.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Provider: "gemini", StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("gemini unmarshal: %w", err)
	}

	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates returned")
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", fmt.Errorf("gemini: no text in response")
}

// --- Response normalization helpers ---

var (
	mdHeadingRe = regexp.MustCompile(`(?m)^#{2,3}\s+`)
	mdBoldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	mdItalicRe  = regexp.MustCompile(`\*(.*?)\*`)
)

// normalizeDraftHTML strips markdown artifacts that slip through the
// "HTML only" instruction: heading markers are removed, bold and italic
// markers become their HTML equivalents.
func normalizeDraftHTML(s string) string {
	s = mdHeadingRe.ReplaceAllString(s, "")
	s = mdBoldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = mdItalicRe.ReplaceAllString(s, "<em>$1</em>")
	return s
}

// firstJSONObject extracts the outermost {...} substring, if any. The
// model frequently surrounds the requested JSON with prose.
func firstJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// truncateRunes cuts a string to at most n runes.
func truncateRunes(s string, n int) string {
	if n < 0 {
		n = 0
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// truncateForError bounds raw model output embedded in error messages.
func truncateForError(s string) string {
	const max = 120
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// --- Gemini API types ---

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiImageRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig geminiImageConfig `json:"generationConfig"`
}

type geminiImageConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiImageResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}
