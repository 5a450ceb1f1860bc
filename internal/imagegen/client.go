package imagegen

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/timing"
)

// DefaultModel is used when no image model is configured
const DefaultModel = "gemini-2.0-flash-preview-image-generation"

// Client generates images with a Gemini image model
type Client struct {
	genai *genai.Client
	model string
	retry atom.RetryConfig
}

// NewClient creates a Gemini-backed generator
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set: %w", ErrDisabled)
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	retry := atom.DefaultRetryConfig()
	retry.OperationName = "GenerateImage"
	retry.Retryable = isRetryableError
	return &Client{genai: client, model: model, retry: retry}, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// Generate runs a text-to-image request. The style suffix is appended to the
// prompt and only square images are requested.
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("prompt is required")
	}
	prompt, style := FinalPrompt(req.Prompt, req.Style)
	prompt += ". Square 1:1 composition."

	logutil.Infof("[GenerateImage] %s (style=%s)", atom.GenerationWaitMessage(c.model), style.ID)
	timer := timing.Start("gemini_generate_image")

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	var resp *genai.GenerateContentResponse
	result := atom.RetryWithResult(ctx, c.retry, func() error {
		var err error
		resp, err = c.genai.Models.GenerateContent(
			ctx,
			c.model,
			[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
			config,
		)
		return err
	})
	if result.LastErr != nil {
		timer.StopAndLogDetails(false, "model=%s attempts=%d", c.model, result.Attempts)
		return nil, fmt.Errorf("image generation failed: %w", result.LastErr)
	}

	data, mimeType := inlineImage(resp)
	if data == nil {
		timer.StopAndLogDetails(false, "model=%s error=no_image", c.model)
		return nil, ErrNoImage
	}

	width, height, format, err := Dimensions(data)
	if err != nil {
		logutil.Warnf("[GenerateImage] could not read dimensions (%v), assuming square", err)
	} else if mimeType == "" {
		mimeType = "image/" + format
	}

	timer.StopAndLogDetails(true, "model=%s attempts=%d size_bytes=%d prompt_len=%d", c.model, result.Attempts, len(data), len(prompt))
	return &Result{
		Data:        data,
		MimeType:    mimeType,
		Width:       width,
		Height:      height,
		Style:       style,
		FinalPrompt: prompt,
		Model:       c.model,
	}, nil
}

func inlineImage(resp *genai.GenerateContentResponse) ([]byte, string) {
	if resp == nil {
		return nil, ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType
			}
		}
	}
	return nil, ""
}
