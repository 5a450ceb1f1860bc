package web

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/jaypaulb/infinite-kanvas/internal/atom"
	"github.com/jaypaulb/infinite-kanvas/internal/canvas"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
	"github.com/jaypaulb/infinite-kanvas/internal/viewport"
)

type canvasResponse struct {
	canvas.Snapshot
	Zoom string `json:"zoom"`
}

type idsRequest struct {
	IDs []string `json:"ids"`
}

type boundsResponse struct {
	Selection []string      `json:"selection,omitempty"`
	Bounds    *types.Bounds `json:"bounds"`
}

func (s *Server) handleGetCanvas(c fiber.Ctx) error {
	snap := s.state.Snapshot()
	return c.JSON(canvasResponse{Snapshot: snap, Zoom: viewport.Percent(snap.Viewport)})
}

func (s *Server) handleSetCanvasSize(c fiber.Ctx) error {
	var size types.CanvasSize
	if err := decodeBody(c, &size); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if size.Width <= 0 || size.Height <= 0 {
		return errorJSON(c, http.StatusBadRequest, "width and height must be positive")
	}
	s.state.SetCanvasSize(size)
	return c.JSON(s.state.CanvasSize())
}

// handleAddElement accepts a loosely typed element:
// {id?, kind?, src?, x?, y?, width, height, rotation?, duration?, cropX?..., autoPlace?}
func (s *Server) handleAddElement(c fiber.Ctx) error {
	var body map[string]interface{}
	if err := decodeBody(c, &body); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	el, err := elementFromBody(body)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	autoPlace, _ := atom.SafeBool(body, "autoPlace")

	added, err := s.state.Add(el, autoPlace)
	if errors.Is(err, canvas.ErrDuplicateID) {
		return errorJSON(c, http.StatusConflict, err.Error())
	}
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	s.persistOrLog("add")
	return c.Status(http.StatusCreated).JSON(added)
}

func elementFromBody(body map[string]interface{}) (types.Element, error) {
	id, _ := atom.SafeString(body, "id")
	id = atom.NormalizeID(id)
	if id == "" {
		id = uuid.NewString()
	}

	width, wok := atom.SafeFloat64(body, "width")
	height, hok := atom.SafeFloat64(body, "height")
	if !wok || !hok || width <= 0 || height <= 0 {
		return types.Element{}, errors.New("width and height must be positive numbers")
	}
	x, _ := atom.SafeFloat64(body, "x")
	y, _ := atom.SafeFloat64(body, "y")
	src, _ := atom.SafeString(body, "src")
	kind, _ := atom.SafeString(body, "kind")

	var el types.Element
	switch types.Kind(kind) {
	case types.KindVideo:
		duration, _ := atom.SafeFloat64(body, "duration")
		el = types.NewVideo(id, src, x, y, width, height, duration)
	case types.KindImage, "":
		el = types.NewImage(id, src, x, y, width, height)
	default:
		return types.Element{}, errors.New("kind must be image or video")
	}

	el.Rotation, _ = atom.SafeFloat64(body, "rotation")
	el.Crop = atom.CropFromMap(body)
	return el, nil
}

func (s *Server) handleDeleteElement(c fiber.Ctx) error {
	id := c.Params("id")
	if err := s.state.Remove(id); err != nil {
		if errors.Is(err, canvas.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "element not found")
		}
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	s.persistOrLog("delete")
	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) handleSetSelection(c fiber.Ctx) error {
	var req idsRequest
	if err := decodeBody(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	selection := s.state.Select(req.IDs)
	resp := boundsResponse{Selection: selection}
	if b, ok := s.state.SelectionBounds(); ok {
		resp.Bounds = &b
	}
	return c.JSON(resp)
}

func (s *Server) handleSelectionBounds(c fiber.Ctx) error {
	var resp boundsResponse
	if b, ok := s.state.SelectionBounds(); ok {
		resp.Bounds = &b
	}
	return c.JSON(resp)
}

func (s *Server) handleNeedsReset(c fiber.Ctx) error {
	ids := s.state.NeedsReset()
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(fiber.Map{"ids": ids})
}

// handleResetElements resets the listed ids, or every flagged element when
// the body is empty or lists none
func (s *Server) handleResetElements(c fiber.Ctx) error {
	var req idsRequest
	if err := decodeBody(c, &req); err != nil && !errors.Is(err, errEmptyBody) {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	reset := s.state.Reset(req.IDs)
	if reset == nil {
		reset = []string{}
	}
	if len(reset) > 0 {
		s.persistOrLog("reset")
	}
	logutil.Debugf("[web][reset] requested=%d reset=%d", len(req.IDs), len(reset))
	return c.JSON(fiber.Map{"reset": reset})
}
