package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/skip2/go-qrcode"

	"github.com/jaypaulb/infinite-kanvas/internal/imagegen"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/storage"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

const defaultImageMime = "image/png"

type generateResponse struct {
	Element types.Element  `json:"element"`
	Style   imagegen.Style `json:"style"`
	Message string         `json:"message"`
}

// handleGenerate runs text-to-image, stores the bytes and drops the image
// next to the existing content
func (s *Server) handleGenerate(c fiber.Ctx) error {
	var req imagegen.Request
	if err := decodeBody(c, &req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return errorJSON(c, http.StatusBadRequest, "prompt is required")
	}
	req.ImageSize = imagegen.SizeSquare

	ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
	defer cancel()

	res, err := s.gen.Generate(ctx, req)
	switch {
	case errors.Is(err, imagegen.ErrDisabled):
		return errorJSON(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, imagegen.ErrNoImage):
		return errorJSON(c, http.StatusBadGateway, err.Error())
	case err != nil:
		logutil.Errorf("[web][generate] %v", err)
		return errorJSON(c, http.StatusBadGateway, "image generation failed")
	}

	mimeType := res.MimeType
	if mimeType == "" {
		mimeType = defaultImageMime
	}
	if s.store == nil {
		return errorJSON(c, http.StatusServiceUnavailable, "media storage is not configured")
	}
	mediaID, err := s.store.SaveMedia(ctx, mimeType, res.Data)
	if err != nil {
		logutil.Errorf("[web][generate] save media: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "could not store image")
	}

	el := s.state.AddGenerated(mediaID, "/media/"+mediaID, float64(res.Width), float64(res.Height))
	s.persistOrLog("generate")

	return c.Status(http.StatusCreated).JSON(generateResponse{
		Element: el,
		Style:   res.Style,
		Message: fmt.Sprintf("Image generated in %s and added to canvas", res.Style.Name),
	})
}

func (s *Server) handleGetMedia(c fiber.Ctx) error {
	if s.store == nil {
		return errorJSON(c, http.StatusNotFound, "media not found")
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	m, err := s.store.GetMedia(ctx, c.Params("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "media not found")
	}
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}
	c.Set("Content-Type", m.MimeType)
	c.Set("Cache-Control", "public, max-age=31536000, immutable")
	return c.Send(m.Data)
}

// handleQRCode serves a QR code of the public URL for opening the canvas on another device
func (s *Server) handleQRCode(c fiber.Ctx) error {
	webURL := s.GetWebURL()
	png, err := qrcode.Encode(webURL, qrcode.Medium, 256)
	if err != nil {
		logutil.Errorf("[web][error] Failed to generate QR code: %v", err)
		return errorJSON(c, http.StatusInternalServerError, "qr generation failed")
	}
	logutil.Debugf("[web] QR code generated for URL: %s", webURL)
	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
