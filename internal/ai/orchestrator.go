// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"brandpress/internal/prompt"
)

// Image generation method identifiers, as sent by the admin panel.
const (
	MethodGemini = "gemini" // native inline image model, returns bytes
	MethodDalle3 = "dalle3" // hosted image model, returns a URL
)

// ErrUnknownMethod means the caller requested a generation method that
// no provider implements.
var ErrUnknownMethod = errors.New("ai: unknown generation method")

// ImageRequest is the input to the image generation orchestrator.
type ImageRequest struct {
	Title      string
	Content    string
	Brand      prompt.Overrides
	Category   string
	Collection string
	// Method pins a specific provider ("gemini" or "dalle3"). Empty
	// selects the default path with provider fallback.
	Method string
}

// ImageResult is the outcome of an image generation run. Exactly one of
// ImageURL or ImageData is set, depending on the method that produced
// the image.
type ImageResult struct {
	Method         string
	Prompt         string
	ImageURL       string
	ImageData      []byte
	MimeType       string
	Fallback       bool   // provider-axis fallback fired
	FallbackReason string // original primary-provider error, when Fallback
	PromptFallback bool   // prompt-axis fallback fired
	Message        string
}

// promptWriter drafts the detailed image prompt from article metadata.
type promptWriter interface {
	GenerateImagePrompt(ctx context.Context, title, content string, ov prompt.Overrides, category, collection string) (string, error)
}

// inlineImager generates an image returned as raw bytes plus MIME type.
type inlineImager interface {
	Configured() bool
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// hostedImager generates an image returned as a provider-hosted URL.
type hostedImager interface {
	Configured() bool
	GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (string, error)
}

// Orchestrator sequences prompt composition and image generation with
// two independent fallback axes:
//
//   - prompt axis: if the AI-composed prompt fails, a static
//     per-collection prompt is substituted. This axis never fails.
//   - provider axis: on the default path, a recoverable (or
//     not-configured) failure of the native provider falls over to the
//     hosted provider. An explicit method request disables this axis
//     entirely, but never the prompt axis.
//
// Fallback is one-shot and strictly sequential: the secondary provider
// is only ever called after the primary has failed.
type Orchestrator struct {
	writer promptWriter
	inline inlineImager
	hosted hostedImager
}

// NewOrchestrator wires the prompt writer and the two image providers.
func NewOrchestrator(writer promptWriter, inline inlineImager, hosted hostedImager) *Orchestrator {
	return &Orchestrator{writer: writer, inline: inline, hosted: hosted}
}

// GenerateImage runs the full generation chain for one article image.
func (o *Orchestrator) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	// Prompt stage. Always yields some prompt: any composition failure
	// switches to the static brand prompt for the collection.
	promptText, err := o.writer.GenerateImagePrompt(ctx, req.Title, req.Content, req.Brand, req.Category, req.Collection)
	promptFallback := false
	if err != nil {
		slog.Warn("image prompt generation failed, using static brand prompt",
			"collection", req.Collection,
			"error", err,
		)
		promptText = prompt.StaticFallback(req.Title, req.Collection)
		promptFallback = true
	}

	switch req.Method {
	case MethodGemini:
		return o.generateInline(ctx, promptText, promptFallback)
	case MethodDalle3:
		return o.generateHosted(ctx, promptText, promptFallback, false, "")
	case "":
		// Default path below.
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, req.Method)
	}

	// Default path: native provider first, hosted provider only after a
	// failure classified as eligible for fallback. Anything else
	// propagates unchanged so unexpected failures stay visible.
	result, err := o.generateInline(ctx, promptText, promptFallback)
	if err == nil {
		return result, nil
	}
	if !fallbackEligible(err) {
		return nil, err
	}

	if !o.hosted.Configured() {
		return nil, &AllUnavailableError{Primary: "gemini", Secondary: "openai", Reason: err.Error()}
	}

	slog.Warn("primary image provider failed, falling back",
		"primary", MethodGemini,
		"secondary", MethodDalle3,
		"error", err,
	)
	return o.generateHosted(ctx, promptText, promptFallback, true, err.Error())
}

// generateInline runs the native (bytes-returning) provider.
func (o *Orchestrator) generateInline(ctx context.Context, promptText string, promptFallback bool) (*ImageResult, error) {
	data, mimeType, err := o.inline.GenerateImage(ctx, promptText)
	if err != nil {
		return nil, err
	}
	res := &ImageResult{
		Method:         MethodGemini,
		Prompt:         promptText,
		ImageData:      data,
		MimeType:       mimeType,
		PromptFallback: promptFallback,
	}
	res.Message = buildMessage(res)
	return res, nil
}

// generateHosted runs the URL-returning provider.
func (o *Orchestrator) generateHosted(ctx context.Context, promptText string, promptFallback, fellBack bool, reason string) (*ImageResult, error) {
	url, err := o.hosted.GenerateImage(ctx, promptText, ImageOptions{})
	if err != nil {
		return nil, err
	}
	res := &ImageResult{
		Method:         MethodDalle3,
		Prompt:         promptText,
		ImageURL:       url,
		Fallback:       fellBack,
		FallbackReason: reason,
		PromptFallback: promptFallback,
	}
	res.Message = buildMessage(res)
	return res, nil
}

// fallbackEligible decides whether a primary-provider failure may be
// answered by the secondary provider. Missing credentials and transient
// upstream failures qualify; everything else propagates to the caller.
func fallbackEligible(err error) bool {
	return errors.Is(err, ErrNotConfigured) || Recoverable(err)
}

// buildMessage assembles the human-readable status line describing how
// the image was produced and which fallbacks, if any, fired.
func buildMessage(res *ImageResult) string {
	var parts []string
	switch res.Method {
	case MethodGemini:
		parts = append(parts, "Base64 image ready - upload to the media library.")
	case MethodDalle3:
		parts = append(parts, "Image URL ready - download and upload to the media library.")
	}
	if res.Fallback {
		parts = append(parts, "Gemini image generation was unavailable; fell back to DALL-E 3.")
	}
	if res.PromptFallback {
		parts = append(parts, "AI prompt generation failed; used the static brand prompt.")
	}
	return strings.Join(parts, " ")
}
