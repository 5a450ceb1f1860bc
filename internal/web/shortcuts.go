package web

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Shortcut is one entry of the keyboard shortcut panel
type Shortcut struct {
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
}

// Shortcuts returns the shortcut catalog with the platform's modifier key
func Shortcuts(mac bool) []Shortcut {
	mod := "Ctrl"
	if mac {
		mod = "⌘"
	}
	return []Shortcut{
		{Keys: []string{"Space", "Drag"}, Description: "Pan"},
		{Keys: []string{"Space", "Scroll"}, Description: "Zoom"},
		{Keys: []string{mod, "F"}, Description: "Focus"},
		{Keys: []string{mod, "0"}, Description: "Reset Image"},
	}
}

// handleShortcuts picks the platform from ?platform= or the User-Agent
func (s *Server) handleShortcuts(c fiber.Ctx) error {
	platform := strings.ToLower(c.Query("platform"))
	if platform == "" {
		platform = strings.ToLower(c.Get("User-Agent"))
	}
	mac := strings.Contains(platform, "mac")
	return c.JSON(fiber.Map{"shortcuts": Shortcuts(mac)})
}
