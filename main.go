package main

import (
	"log"
	"os"
	"strings"

	"sport-tracker-api/config"
	"sport-tracker-api/handlers"
	"sport-tracker-api/observability"
	"sport-tracker-api/pkg/notify"
	"sport-tracker-api/state"
	"sport-tracker-api/storage"
	"sport-tracker-api/websocket"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Could not load config:", err)
	}

	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") == "release" || strings.ToLower(cfg.App.Env) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := storage.NewFileStore(cfg.Store.DataFile)
	engine := state.NewEngine(storage.LoadOrDefault(store, state.DefaultState))
	observability.SetActivityCount(len(engine.List()))

	saver := storage.NewWriter(store, func() ([]byte, error) {
		return storage.Encode(engine.Export())
	})

	// WebSocket hub pushes refresh events to open dashboards
	hub := websocket.NewHub()
	notifier := &notify.WSNotifier{Hub: hub}

	r := handlers.NewRouter(cfg, handlers.Deps{
		Engine:   engine,
		Saver:    saver,
		Notifier: notifier,
		Hub:      hub,
	})

	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
