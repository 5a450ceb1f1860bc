package startup

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/config"
	"github.com/jaypaulb/infinite-kanvas/internal/imagegen"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
)

// Validate checks the configuration before the server starts
func Validate(cfg *config.Config) error {
	if err := validateServer(cfg); err != nil {
		return err
	}
	if err := validateCanvas(cfg); err != nil {
		return err
	}
	validateGeminiKey(cfg)
	return nil
}

func validateServer(cfg *config.Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT %q is not a valid port", cfg.Port)
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 {
		return errors.New("READ_TIMEOUT and WRITE_TIMEOUT must be positive")
	}
	if cfg.DBPath == "" {
		return errors.New("KANVAS_DB_PATH must not be empty")
	}
	return nil
}

func validateCanvas(cfg *config.Config) error {
	if cfg.CanvasID == "" {
		return errors.New("CANVAS_ID must not be empty")
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size %gx%g must be positive", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	if cfg.DisplayWidth <= 0 {
		return fmt.Errorf("MINIMAP_DISPLAY_WIDTH %g must be positive", cfg.DisplayWidth)
	}
	return nil
}

func validateGeminiKey(cfg *config.Config) {
	if cfg.GeminiAPIKey == "" {
		logutil.Warnf("[startup] GEMINI_API_KEY not set, image generation is disabled")
		return
	}
	logutil.Infof("[startup] GEMINI_API_KEY: %s (model %s)", atom.MaskKey(cfg.GeminiAPIKey), cfg.GeminiModelImage)
}

// NewGenerator builds the Gemini image generator, or the disabled one when
// no key is configured or the client cannot be created
func NewGenerator(cfg *config.Config, timeout time.Duration) imagegen.Generator {
	if cfg.GeminiAPIKey == "" {
		return imagegen.Disabled{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := imagegen.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelImage)
	if err != nil {
		logutil.Errorf("[startup] Gemini client failed (key: %s): %v", atom.MaskKey(cfg.GeminiAPIKey), err)
		return imagegen.Disabled{}
	}
	return client
}
