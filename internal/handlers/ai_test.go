// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brandpress/internal/ai"
	"brandpress/internal/search"
)

// mockText implements TextGenerator with overridable behavior per test.
type mockText struct {
	configured bool
	seoFn      func(title, content string) (*ai.SEOMetadata, error)
	excerptFn  func(content string, maxLength int) (string, error)
	draftFn    func(topic string, keywords []string, outline string) (string, error)
	calls      int
}

func (m *mockText) Configured() bool { return m.configured }

func (m *mockText) GenerateSEO(ctx context.Context, title, content string) (*ai.SEOMetadata, error) {
	m.calls++
	return m.seoFn(title, content)
}

func (m *mockText) GenerateExcerpt(ctx context.Context, content string, maxLength int) (string, error) {
	m.calls++
	return m.excerptFn(content, maxLength)
}

func (m *mockText) GenerateBlogDraft(ctx context.Context, topic string, keywords []string, outline string) (string, error) {
	m.calls++
	return m.draftFn(topic, keywords, outline)
}

type mockImages struct {
	fn    func(req ai.ImageRequest) (*ai.ImageResult, error)
	calls int
}

func (m *mockImages) GenerateImage(ctx context.Context, req ai.ImageRequest) (*ai.ImageResult, error) {
	m.calls++
	return m.fn(req)
}

type fixedConfigured bool

func (f fixedConfigured) Configured() bool { return bool(f) }

type fixedSearchStatus bool

func (f fixedSearchStatus) Enabled() bool { return bool(f) }

func (f fixedSearchStatus) Search(ctx context.Context, query, collection string, limit int) ([]search.Result, error) {
	return nil, search.ErrNotEnabled
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body errorBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error.Code, body.Error.Message
}

func TestGenerateSEO(t *testing.T) {
	t.Run("returns metadata on success", func(t *testing.T) {
		text := &mockText{seoFn: func(title, content string) (*ai.SEOMetadata, error) {
			return &ai.SEOMetadata{MetaTitle: "Five Tips", MetaDescription: "A short guide."}, nil
		}}
		h := NewAI(text, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateSEO, `{"title":"5 Tips","content":"Body text."}`)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		var body struct {
			MetaTitle       string `json:"metaTitle"`
			MetaDescription string `json:"metaDescription"`
			Slug            string `json:"slug"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.MetaTitle != "Five Tips" || body.MetaDescription != "A short guide." {
			t.Errorf("metadata: got %+v", body)
		}
		if body.Slug != "5-tips" {
			t.Errorf("slug: got %q, want %q", body.Slug, "5-tips")
		}
	})

	t.Run("rejects missing title without calling provider", func(t *testing.T) {
		text := &mockText{seoFn: func(string, string) (*ai.SEOMetadata, error) {
			t.Fatal("provider should not be called")
			return nil, nil
		}}
		h := NewAI(text, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateSEO, `{"content":"Body text."}`)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", rr.Code)
		}
		if code, _ := decodeError(t, rr); code != "validation_error" {
			t.Errorf("code: got %q, want validation_error", code)
		}
		if text.calls != 0 {
			t.Errorf("provider calls: got %d, want 0", text.calls)
		}
	})

	t.Run("maps malformed provider output to 502", func(t *testing.T) {
		text := &mockText{seoFn: func(string, string) (*ai.SEOMetadata, error) {
			return nil, ai.ErrMalformedResponse
		}}
		h := NewAI(text, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateSEO, `{"title":"T","content":"C"}`)

		if rr.Code != http.StatusBadGateway {
			t.Fatalf("status: got %d, want 502", rr.Code)
		}
		if code, _ := decodeError(t, rr); code != "malformed_response" {
			t.Errorf("code: got %q, want malformed_response", code)
		}
	})

	t.Run("maps missing credential to provider_unavailable", func(t *testing.T) {
		text := &mockText{seoFn: func(string, string) (*ai.SEOMetadata, error) {
			return nil, ai.ErrNotConfigured
		}}
		h := NewAI(text, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateSEO, `{"title":"T","content":"C"}`)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", rr.Code)
		}
		if code, _ := decodeError(t, rr); code != "provider_unavailable" {
			t.Errorf("code: got %q, want provider_unavailable", code)
		}
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		h := NewAI(&mockText{}, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateSEO, `{not json`)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", rr.Code)
		}
	})
}

func TestGenerateExcerpt(t *testing.T) {
	t.Run("defaults maxLength when omitted", func(t *testing.T) {
		var gotMax int
		text := &mockText{excerptFn: func(content string, maxLength int) (string, error) {
			gotMax = maxLength
			return "short excerpt", nil
		}}
		h := NewAI(text, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateExcerpt, `{"content":"Long body."}`)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		if gotMax != defaultExcerptLength {
			t.Errorf("maxLength: got %d, want %d", gotMax, defaultExcerptLength)
		}
		var body map[string]string
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["excerpt"] != "short excerpt" {
			t.Errorf("excerpt: got %q", body["excerpt"])
		}
	})

	t.Run("passes explicit maxLength through", func(t *testing.T) {
		var gotMax int
		text := &mockText{excerptFn: func(content string, maxLength int) (string, error) {
			gotMax = maxLength
			return "x", nil
		}}
		h := NewAI(text, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		postJSON(t, h.GenerateExcerpt, `{"content":"Body.","maxLength":150}`)

		if gotMax != 150 {
			t.Errorf("maxLength: got %d, want 150", gotMax)
		}
	})

	t.Run("rejects empty content", func(t *testing.T) {
		text := &mockText{excerptFn: func(string, int) (string, error) {
			t.Fatal("provider should not be called")
			return "", nil
		}}
		h := NewAI(text, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateExcerpt, `{"content":"   "}`)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", rr.Code)
		}
	})
}

func TestGenerateBlogDraft(t *testing.T) {
	t.Run("returns generated content", func(t *testing.T) {
		var gotKeywords []string
		text := &mockText{draftFn: func(topic string, keywords []string, outline string) (string, error) {
			gotKeywords = keywords
			return "<h2>Intro</h2><p>Text.</p>", nil
		}}
		h := NewAI(text, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateBlogDraft, `{"topic":"Kubernetes","keywords":["pods","nodes"]}`)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		if len(gotKeywords) != 2 || gotKeywords[0] != "pods" {
			t.Errorf("keywords: got %v", gotKeywords)
		}
		var body map[string]string
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.Contains(body["content"], "<h2>") {
			t.Errorf("content: got %q", body["content"])
		}
	})

	t.Run("rejects missing topic", func(t *testing.T) {
		h := NewAI(&mockText{}, &mockImages{}, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateBlogDraft, `{"outline":"1. intro"}`)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", rr.Code)
		}
	})
}

func TestGenerateImage(t *testing.T) {
	t.Run("encodes inline image data as base64", func(t *testing.T) {
		raw := []byte{0x89, 0x50, 0x4e, 0x47}
		images := &mockImages{fn: func(req ai.ImageRequest) (*ai.ImageResult, error) {
			return &ai.ImageResult{
				Method:    "gemini",
				Prompt:    "a header image",
				ImageData: raw,
				MimeType:  "image/png",
				Message:   "Base64 image ready - upload to the media library.",
			}, nil
		}}
		h := NewAI(&mockText{}, images, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateImage, `{"title":"5 Tips","collectionType":"amabex-article"}`)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rr.Code)
		}
		var body map[string]any
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["method"] != "gemini" {
			t.Errorf("method: got %v", body["method"])
		}
		if body["imageBase64"] != base64.StdEncoding.EncodeToString(raw) {
			t.Errorf("imageBase64: got %v", body["imageBase64"])
		}
		if _, present := body["fallback"]; present {
			t.Error("fallback should be omitted when false")
		}
		if _, present := body["imageUrl"]; present {
			t.Error("imageUrl should be omitted for inline results")
		}
	})

	t.Run("forwards request fields to the orchestrator", func(t *testing.T) {
		var got ai.ImageRequest
		images := &mockImages{fn: func(req ai.ImageRequest) (*ai.ImageResult, error) {
			got = req
			return &ai.ImageResult{Method: "dalle3", Prompt: "p", ImageURL: "https://img"}, nil
		}}
		h := NewAI(&mockText{}, images, fixedConfigured(true), fixedSearchStatus(false))

		postJSON(t, h.GenerateImage, `{"title":"T","content":"C","category":"tutorial","collectionType":"yaicos-article","method":"dalle3","brand":{"style":"minimal"}}`)

		if got.Collection != "yaicos-article" || got.Method != "dalle3" || got.Category != "tutorial" {
			t.Errorf("request: got %+v", got)
		}
		if got.Brand.Style != "minimal" {
			t.Errorf("brand override: got %+v", got.Brand)
		}
	})

	t.Run("maps unknown method to validation_error", func(t *testing.T) {
		images := &mockImages{fn: func(ai.ImageRequest) (*ai.ImageResult, error) {
			return nil, ai.ErrUnknownMethod
		}}
		h := NewAI(&mockText{}, images, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateImage, `{"title":"T","method":"stable-diffusion"}`)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status: got %d, want 400", rr.Code)
		}
		if code, _ := decodeError(t, rr); code != "validation_error" {
			t.Errorf("code: got %q, want validation_error", code)
		}
	})

	t.Run("maps exhausted providers to all_providers_unavailable", func(t *testing.T) {
		images := &mockImages{fn: func(ai.ImageRequest) (*ai.ImageResult, error) {
			return nil, &ai.AllUnavailableError{Primary: "gemini", Secondary: "openai", Reason: "no credentials"}
		}}
		h := NewAI(&mockText{}, images, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateImage, `{"title":"T"}`)

		if rr.Code != http.StatusBadGateway {
			t.Fatalf("status: got %d, want 502", rr.Code)
		}
		code, message := decodeError(t, rr)
		if code != "all_providers_unavailable" {
			t.Errorf("code: got %q", code)
		}
		if !strings.Contains(message, "gemini") || !strings.Contains(message, "openai") {
			t.Errorf("message should name both providers: %q", message)
		}
	})

	t.Run("maps upstream failure to 502 with original text", func(t *testing.T) {
		images := &mockImages{fn: func(ai.ImageRequest) (*ai.ImageResult, error) {
			return nil, &ai.UpstreamError{Provider: "gemini", StatusCode: 500, Message: "internal model error"}
		}}
		h := NewAI(&mockText{}, images, fixedConfigured(true), fixedSearchStatus(false))

		rr := postJSON(t, h.GenerateImage, `{"title":"T"}`)

		if rr.Code != http.StatusBadGateway {
			t.Fatalf("status: got %d, want 502", rr.Code)
		}
		code, message := decodeError(t, rr)
		if code != "upstream_error" {
			t.Errorf("code: got %q", code)
		}
		if !strings.Contains(message, "internal model error") {
			t.Errorf("message should carry the upstream text: %q", message)
		}
	})
}

func TestAIStatus(t *testing.T) {
	h := NewAI(&mockText{configured: true}, &mockImages{}, fixedConfigured(false), fixedSearchStatus(true))

	req := httptest.NewRequest(http.MethodGet, "/ai/status", nil)
	rr := httptest.NewRecorder()
	h.Status(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var body map[string]bool
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body["gemini"] || body["openai"] || !body["semanticSearch"] {
		t.Errorf("status body: got %v", body)
	}
}
