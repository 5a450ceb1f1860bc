package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jaypaulb/infinite-kanvas/internal/imagegen"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
)

// HealthStatus represents the overall health status of the service
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResponse is the JSON response for the /health endpoint
type HealthResponse struct {
	Status  HealthStatus `json:"status"`
	Uptime  string       `json:"uptime"`
	Version string       `json:"version"`
	Details struct {
		Storage         bool `json:"storage"`
		ImageGeneration bool `json:"image_generation"`
	} `json:"details"`
}

// handleHealth reports storage reachability and whether generation is configured.
// Missing generation only degrades the service.
func (s *Server) handleHealth(c fiber.Ctx) error {
	storageOK := true
	if s.store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
		defer cancel()
		if err := s.store.Ping(ctx); err != nil {
			storageOK = false
			logutil.Warnf("[web][health] storage check failed: %v", err)
		}
	}
	_, disabled := s.gen.(imagegen.Disabled)

	status := HealthStatusHealthy
	switch {
	case !storageOK:
		status = HealthStatusUnhealthy
	case disabled:
		status = HealthStatusDegraded
	}

	response := HealthResponse{
		Status:  status,
		Uptime:  formatUptime(time.Since(startTime)),
		Version: Version,
	}
	response.Details.Storage = storageOK
	response.Details.ImageGeneration = !disabled

	code := http.StatusOK
	if status == HealthStatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	return c.Status(code).JSON(response)
}

// formatUptime formats a duration into a human-readable string
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
