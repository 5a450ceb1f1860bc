package imagegen

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

func TestGeminiImageGeneration(t *testing.T) {
	_ = godotenv.Load("../../.env")
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set, skipping live image generation")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := NewClient(ctx, apiKey, os.Getenv("GEMINI_MODEL_IMAGE"))
	if err != nil {
		t.Fatalf("Failed to create Gemini client: %v", err)
	}

	res, err := client.Generate(ctx, Request{Prompt: "a lighthouse on a cliff at sunset", Style: "watercolor", ImageSize: SizeSquare})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(res.Data) == 0 {
		t.Fatal("empty image data")
	}
	t.Logf("Generated %dx%d %s (%d bytes) with %s", res.Width, res.Height, res.MimeType, len(res.Data), res.Model)
}
