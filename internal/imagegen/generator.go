// Package imagegen turns text prompts into images for the canvas.
package imagegen

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNoImage is returned when the model answered without image data
	ErrNoImage = errors.New("no image data returned")
	// ErrDisabled is returned by the generator used when no API key is configured
	ErrDisabled = errors.New("image generation is not configured")
)

// SizeSquare is the only image size offered
const SizeSquare = "square"

// Request is a text-to-image request
type Request struct {
	Prompt    string `json:"prompt"`
	Style     string `json:"style,omitempty"`
	ImageSize string `json:"imageSize,omitempty"`
}

// Result is a generated image with its decoded dimensions
type Result struct {
	Data        []byte
	MimeType    string
	Width       int
	Height      int
	Style       Style
	FinalPrompt string
	Model       string
}

// Generator produces images from prompts
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Disabled is the Generator used when no credentials are available
type Disabled struct{}

// Generate always fails with ErrDisabled
func (Disabled) Generate(context.Context, Request) (*Result, error) {
	return nil, ErrDisabled
}

// isRateLimitError checks if an error from Gemini indicates rate limiting
func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "Too Many Requests")
}

// isRetryableError checks if an error from Gemini is transient and should be retried
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoImage) {
		return false
	}
	if isRateLimitError(err) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "504") ||
		strings.Contains(errStr, "INTERNAL") ||
		strings.Contains(errStr, "UNAVAILABLE")
}
