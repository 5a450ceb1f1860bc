package web

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/jaypaulb/infinite-kanvas/internal/canvas"
	"github.com/jaypaulb/infinite-kanvas/internal/molecule"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
	"github.com/jaypaulb/infinite-kanvas/internal/viewport"
)

type viewportResponse struct {
	types.Viewport
	Zoom string `json:"zoom"`
}

type zoomAtRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Factor float64 `json:"factor"`
}

type panRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

func (s *Server) respondViewport(c fiber.Ctx, v types.Viewport) error {
	s.persistOrLog("viewport")
	return c.JSON(viewportResponse{Viewport: v, Zoom: viewport.Percent(v)})
}

func (s *Server) handleSetViewport(c fiber.Ctx) error {
	var v types.Viewport
	if err := decodeBody(c, &v); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if v.Scale <= 0 {
		return errorJSON(c, http.StatusBadRequest, "scale must be positive")
	}
	return s.respondViewport(c, s.state.SetViewport(v))
}

func (s *Server) handleZoomIn(c fiber.Ctx) error {
	return s.respondViewport(c, s.state.UpdateViewport(func(snap canvas.Snapshot) types.Viewport {
		return viewport.ZoomIn(snap.Viewport, snap.CanvasSize)
	}))
}

func (s *Server) handleZoomOut(c fiber.Ctx) error {
	return s.respondViewport(c, s.state.UpdateViewport(func(snap canvas.Snapshot) types.Viewport {
		return viewport.ZoomOut(snap.Viewport, snap.CanvasSize)
	}))
}

func (s *Server) handleZoomAt(c fiber.Ctx) error {
	var req zoomAtRequest
	if err := decodeBody(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if req.Factor <= 0 {
		return errorJSON(c, http.StatusBadRequest, "factor must be positive")
	}
	return s.respondViewport(c, s.state.UpdateViewport(func(snap canvas.Snapshot) types.Viewport {
		return viewport.ZoomAt(snap.Viewport, types.Point{X: req.X, Y: req.Y}, req.Factor)
	}))
}

func (s *Server) handleResetView(c fiber.Ctx) error {
	return s.respondViewport(c, s.state.UpdateViewport(func(snap canvas.Snapshot) types.Viewport {
		return viewport.ResetView(snap.Images, snap.Videos, snap.CanvasSize)
	}))
}

var errNoSelection = errors.New("nothing selected")

// handleFocus fits the selection into view
func (s *Server) handleFocus(c fiber.Ctx) error {
	var focusErr error
	v := s.state.UpdateViewport(func(snap canvas.Snapshot) types.Viewport {
		b, ok := molecule.SelectionBounds(snap.Images, snap.Videos, snap.Selection)
		if !ok {
			focusErr = errNoSelection
			return snap.Viewport
		}
		return viewport.FocusOn(b, snap.CanvasSize)
	})
	if focusErr != nil {
		return errorJSON(c, http.StatusConflict, focusErr.Error())
	}
	return s.respondViewport(c, v)
}

func (s *Server) handlePan(c fiber.Ctx) error {
	var req panRequest
	if err := decodeBody(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	return s.respondViewport(c, s.state.UpdateViewport(func(snap canvas.Snapshot) types.Viewport {
		return viewport.Pan(snap.Viewport, req.DX, req.DY)
	}))
}
