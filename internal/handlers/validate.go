package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for AI request fields.
const (
	maxTitleLen   = 300
	maxContentLen = 100_000
	maxTopicLen   = 500
	maxOutlineLen = 5_000
	maxQueryLen   = 1_000
	maxKeywords   = 20
)

// validateSEOInput checks the generate-seo payload and returns the first
// problem found, or "".
func validateSEOInput(title, content string) string {
	if strings.TrimSpace(title) == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if strings.TrimSpace(content) == "" {
		return "content is required"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "content is too long (max 100,000 characters)"
	}
	return ""
}

func validateExcerptInput(content string, maxLength int) string {
	if strings.TrimSpace(content) == "" {
		return "content is required"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "content is too long (max 100,000 characters)"
	}
	if maxLength < 0 {
		return "maxLength must not be negative"
	}
	return ""
}

func validateDraftInput(topic string, keywords []string, outline string) string {
	if strings.TrimSpace(topic) == "" {
		return "topic is required"
	}
	if utf8.RuneCountInString(topic) > maxTopicLen {
		return "topic is too long (max 500 characters)"
	}
	if len(keywords) > maxKeywords {
		return "too many keywords (max 20)"
	}
	if utf8.RuneCountInString(outline) > maxOutlineLen {
		return "outline is too long (max 5,000 characters)"
	}
	return ""
}

func validateImageInput(title string) string {
	if strings.TrimSpace(title) == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	return ""
}

func validateSearchInput(query string, limit int) string {
	if strings.TrimSpace(query) == "" {
		return "query is required"
	}
	if utf8.RuneCountInString(query) > maxQueryLen {
		return "query is too long (max 1,000 characters)"
	}
	if limit < 0 {
		return "limit must not be negative"
	}
	return ""
}
