package web

import (
	"bytes"
	"math"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/jaypaulb/infinite-kanvas/internal/canvas"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/minimap"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

type minimapResponse struct {
	minimap.Projection
	Items []minimap.Item `json:"items"`
}

type pointerRequest struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Source string  `json:"source,omitempty"`
}

type pointerResponse struct {
	Dragging bool           `json:"dragging"`
	Viewport types.Viewport `json:"viewport"`
}

func (s *Server) project(snap canvas.Snapshot, displayWidth float64) minimap.Projection {
	return minimap.Project(minimap.Input{
		Images:       snap.Images,
		Videos:       snap.Videos,
		Viewport:     snap.Viewport,
		CanvasSize:   snap.CanvasSize,
		DisplayWidth: displayWidth,
	})
}

// displayWidth reads ?displayWidth=, falling back to the configured width
func (s *Server) displayWidth(c fiber.Ctx) float64 {
	if raw := c.Query("displayWidth"); raw != "" {
		if w, err := strconv.ParseFloat(raw, 64); err == nil && w > 0 {
			return w
		}
	}
	return s.Config.DisplayWidth
}

func (s *Server) handleMinimap(c fiber.Ctx) error {
	p := s.project(s.state.Snapshot(), s.displayWidth(c))
	return c.JSON(minimapResponse{Projection: p, Items: p.Items()})
}

func (s *Server) handleMinimapPNG(c fiber.Ctx) error {
	p := s.project(s.state.Snapshot(), s.displayWidth(c))
	var buf bytes.Buffer
	if err := minimap.Render(p, &buf); err != nil {
		logutil.Errorf("[web][minimap] render failed: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "render failed")
	}
	c.Set("Content-Type", "image/png")
	c.Set("Cache-Control", "no-store")
	return c.Send(buf.Bytes())
}

// handleMinimapPointer feeds a pointer event into the event bus. Events
// default to the mini-map as their source; a pointer-up from any source
// ends a mini-map drag.
func (s *Server) handleMinimapPointer(c fiber.Ctx) error {
	var req pointerRequest
	if err := decodeBody(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	eventType := types.ParsePointerEventType(req.Type)
	if eventType == types.PointerNone {
		return errorJSON(c, http.StatusBadRequest, "type must be down, move, up or leave")
	}
	if req.Source == "" {
		req.Source = minimap.Source
	}
	s.pointerDisplay.Store(math.Float64bits(s.displayWidth(c)))

	s.bus.Publish(types.PointerEvent{Type: eventType, X: req.X, Y: req.Y, Source: req.Source})
	if eventType == types.PointerDown || eventType == types.PointerMove {
		s.persistOrLog("minimap")
	}

	return c.JSON(pointerResponse{Dragging: s.drag.Dragging(), Viewport: s.state.Viewport()})
}

// navigateMinimap centers the view on the canvas point under a widget
// position, using the layout of the display that sent the pointer event
func (s *Server) navigateMinimap(widgetX, widgetY float64) {
	display := math.Float64frombits(s.pointerDisplay.Load())
	if display <= 0 {
		display = s.Config.DisplayWidth
	}
	s.state.UpdateViewport(func(snap canvas.Snapshot) types.Viewport {
		return s.project(snap, display).Navigate(widgetX, widgetY)
	})
}
