package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaypaulb/infinite-kanvas/internal/canvas"
	"github.com/jaypaulb/infinite-kanvas/internal/config"
	"github.com/jaypaulb/infinite-kanvas/internal/logutil"
	"github.com/jaypaulb/infinite-kanvas/internal/startup"
	"github.com/jaypaulb/infinite-kanvas/internal/storage"
	"github.com/jaypaulb/infinite-kanvas/internal/types"
	"github.com/jaypaulb/infinite-kanvas/internal/web"
)

func main() {
	cfg := config.Load()
	logutil.SetLevel(logutil.ParseLevel(cfg.LogLevel))

	if err := startup.Validate(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := storage.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	state := canvas.New(types.CanvasSize{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight})
	elements, vp, err := repo.LoadCanvas(context.Background(), cfg.CanvasID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		logutil.Infof("[main] canvas %q is new", cfg.CanvasID)
	case err != nil:
		log.Fatalf("load canvas: %v", err)
	default:
		state.Load(elements, vp)
		logutil.Infof("[main] restored canvas %q with %d elements", cfg.CanvasID, len(elements))
	}

	srv := web.NewServer(web.ServerConfig{
		Port:         cfg.Port,
		Environment:  cfg.Environment,
		PublicWebURL: cfg.PublicWebURL,
		CanvasID:     cfg.CanvasID,
		DisplayWidth: cfg.DisplayWidth,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}, state, repo, startup.NewGenerator(cfg, 10*time.Second))

	// Handle graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if err := srv.Listen(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	log.Println("Server stopped. Exiting.")
}
