// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by all provider clients.
var (
	// ErrNotConfigured means the provider has no API key and no upstream
	// call was attempted.
	ErrNotConfigured = errors.New("ai: provider not configured")

	// ErrMalformedResponse means the provider answered but the response
	// did not contain the structured data we asked for.
	ErrMalformedResponse = errors.New("ai: malformed provider response")

	// ErrNoImage means an image-generation response carried no image
	// payload among its parts.
	ErrNoImage = errors.New("ai: no image data in response")
)

// UpstreamError wraps a failed provider call, preserving the HTTP status
// and the provider's own diagnostic text.
type UpstreamError struct {
	Provider   string
	StatusCode int // 0 when the failure happened before an HTTP response
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}

// AllUnavailableError reports that the primary provider failed over and
// the fallback target had no credentials either.
type AllUnavailableError struct {
	Primary   string
	Secondary string
	Reason    string
}

func (e *AllUnavailableError) Error() string {
	return fmt.Sprintf("ai: %s failed (%s) and %s is not configured", e.Primary, e.Reason, e.Secondary)
}

// recoverableMarkers are the error-text indicators of transient provider
// failures, checked when no structured status code is available.
var recoverableMarkers = []string{
	"503", "429", "overloaded", "quota", "timeout", "rate limit",
}

// Recoverable reports whether a provider failure is transient (overload,
// quota exhaustion, timeout) and therefore eligible for provider-level
// fallback. Structured HTTP status classification is preferred; the
// error text is only inspected when no status is attached.
func Recoverable(err error) bool {
	if err == nil {
		return false
	}

	var ue *UpstreamError
	if errors.As(err, &ue) && ue.StatusCode > 0 {
		switch ue.StatusCode {
		case 429, 503, 408, 504:
			return true
		}
		// A definite non-transient status still gets the text check:
		// some gateways tunnel overload reports inside a 500 body.
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range recoverableMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
