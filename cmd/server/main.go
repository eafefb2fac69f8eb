package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/photobooth/internal/api"
	"github.com/youruser/photobooth/internal/booth"
	"github.com/youruser/photobooth/internal/util"
	"github.com/youruser/photobooth/internal/ws"
)

func main() {
	util.LoadEnv()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store := booth.NewStore()
	hub := ws.NewHub(logger)
	go hub.Run()

	// every store mutation fans out to connected clients
	store.Subscribe(func(ev booth.Event) {
		hub.Broadcast(ev)
	})

	r := gin.Default()
	api.RegisterRoutes(r, api.NewServer(store, logger), hub)

	port := util.GetEnv("PORT", "8080")
	logger.Info("starting server", "addr", "http://localhost:"+port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}
