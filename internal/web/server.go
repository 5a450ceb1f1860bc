package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Showmax/go-fqdn"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/jaypaulb/infinite-kanvas/internal/canvas"
	"github.com/jaypaulb/infinite-kanvas/internal/events"
	"github.com/jaypaulb/infinite-kanvas/internal/imagegen"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/minimap"
	"github.com/jaypaulb/infinite-kanvas/internal/storage"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
)

// Version can be set at build time via -ldflags
var Version = "dev"

// startTime records when the server started for uptime calculation
var startTime time.Time

func init() {
	startTime = time.Now()
}

const (
	storageTimeout    = 5 * time.Second
	generationTimeout = 2 * time.Minute
)

var errEmptyBody = errors.New("empty body")

// Store is the persistence the server needs
type Store interface {
	Ping(ctx context.Context) error
	SaveCanvas(ctx context.Context, canvasID string, elements []types.Element, v types.Viewport) error
	SaveMedia(ctx context.Context, mimeType string, data []byte) (string, error)
	GetMedia(ctx context.Context, id string) (*storage.Media, error)
}

// ServerConfig holds configuration for the web server
type ServerConfig struct {
	Port         string
	Environment  string
	PublicWebURL string
	CanvasID     string
	DisplayWidth float64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server exposes the canvas over HTTP
type Server struct {
	Config ServerConfig

	state *canvas.State
	store Store
	gen   imagegen.Generator
	bus   *events.Bus
	drag  *minimap.Drag
	app   *fiber.App

	// display width of the last pointer event, as float64 bits
	pointerDisplay atomic.Uint64

	// saveMu orders saves; savedVersion is the state version last written
	saveMu       sync.Mutex
	saved        bool
	savedVersion uint64
}

// NewServer wires the routes. The mini-map drag session lives as long as the server.
func NewServer(cfg ServerConfig, state *canvas.State, store Store, gen imagegen.Generator) *Server {
	if gen == nil {
		gen = imagegen.Disabled{}
	}
	s := &Server{
		Config: cfg,
		state:  state,
		store:  store,
		gen:    gen,
		bus:    events.NewBus(),
	}
	s.drag = minimap.NewDrag(s.bus, s.navigateMinimap)

	s.app = fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		AppName:      "Infinite Kanvas",
		BodyLimit:    16 * 1024 * 1024,
	})

	s.app.Use(recover.New())
	s.app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", s.handleHealth)
	s.app.Get("/shortcuts", s.handleShortcuts)
	s.app.Get("/qr.png", s.handleQRCode)

	s.app.Get("/canvas", s.handleGetCanvas)
	s.app.Put("/canvas/size", s.handleSetCanvasSize)
	s.app.Post("/canvas/elements", s.handleAddElement)
	s.app.Delete("/canvas/elements/:id", s.handleDeleteElement)
	s.app.Put("/canvas/selection", s.handleSetSelection)
	s.app.Get("/canvas/selection/bounds", s.handleSelectionBounds)
	s.app.Get("/canvas/needs-reset", s.handleNeedsReset)
	s.app.Post("/canvas/reset", s.handleResetElements)

	s.app.Put("/viewport", s.handleSetViewport)
	s.app.Post("/viewport/zoom-in", s.handleZoomIn)
	s.app.Post("/viewport/zoom-out", s.handleZoomOut)
	s.app.Post("/viewport/zoom-at", s.handleZoomAt)
	s.app.Post("/viewport/reset", s.handleResetView)
	s.app.Post("/viewport/focus", s.handleFocus)
	s.app.Post("/viewport/pan", s.handlePan)

	s.app.Get("/minimap", s.handleMinimap)
	s.app.Get("/minimap.png", s.handleMinimapPNG)
	s.app.Post("/minimap/pointer", s.handleMinimapPointer)

	s.app.Post("/generate", s.handleGenerate)
	s.app.Get("/media/:id", s.handleGetMedia)
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// GetWebURL returns the public web URL for the server
func (s *Server) GetWebURL() string {
	if s.Config.PublicWebURL != "" {
		return s.Config.PublicWebURL
	}

	fqdnHost, err := fqdn.FqdnHostname()
	if err != nil || fqdnHost == "" {
		fqdnHost, _ = os.Hostname()
	}
	return "http://" + fqdnHost + ":" + s.Config.Port + "/"
}

// Listen blocks serving HTTP until the server is shut down
func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%s", s.Config.Port)
	fqdnHost, _ := fqdn.FqdnHostname()
	logutil.Infof("[web] Starting web server on %s (FQDN: %s, env: %s)", addr, fqdnHost, s.Config.Environment)
	return s.app.Listen(addr)
}

// Shutdown ends the drag session, stores the canvas and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.drag.Close()
	if err := s.persist(); err != nil {
		logutil.Errorf("[web] final save failed: %v", err)
	}
	return s.app.ShutdownWithContext(ctx)
}

// persist writes one consistent snapshot of the canvas to the store. Saves
// run one at a time and the snapshot is taken inside that section, so a save
// never overwrites a newer one. Unchanged versions are not written again.
func (s *Server) persist() error {
	if s.store == nil {
		return nil
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	snap := s.state.Snapshot()
	if s.saved && snap.Version == s.savedVersion {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := s.store.SaveCanvas(ctx, s.Config.CanvasID, types.Join(snap.Images, snap.Videos), snap.Viewport); err != nil {
		return err
	}
	s.saved, s.savedVersion = true, snap.Version
	return nil
}

// persistOrLog saves after a mutation. A failed save does not fail the
// request; the in-memory canvas stays authoritative.
func (s *Server) persistOrLog(op string) {
	if err := s.persist(); err != nil {
		logutil.Errorf("[web][%s] save failed: %v", op, err)
	}
}

func decodeBody(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return errEmptyBody
	}
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func errorJSON(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
