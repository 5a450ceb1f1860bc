package atom

import (
	"fmt"
	"math"
	"strings"
)

// ComposeStylePrompt appends a style suffix to the user's prompt
func ComposeStylePrompt(prompt, stylePrompt string) string {
	prompt = strings.TrimSpace(prompt)
	stylePrompt = strings.TrimSpace(stylePrompt)
	if stylePrompt == "" {
		return prompt
	}
	return fmt.Sprintf("%s, %s", prompt, stylePrompt)
}

// FormatZoomPercent renders a viewport scale the way the zoom control shows it
func FormatZoomPercent(scale float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(scale*100)))
}

// GenerationWaitMessage returns the wait message shown while an image model runs
func GenerationWaitMessage(model string) string {
	modelLower := strings.ToLower(model)

	if strings.Contains(modelLower, "imagen") {
		return "Generating image, please wait... This can take up to 30 seconds."
	} else if strings.Contains(modelLower, "flash") {
		return "Generating image, please wait... This can take up to 20 seconds."
	}
	return "Generating image, please wait..."
}
