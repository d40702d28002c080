package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kiutdigital/clubportal/internal/api"
	"github.com/kiutdigital/clubportal/internal/config"
	"github.com/kiutdigital/clubportal/internal/idcard"
	"github.com/kiutdigital/clubportal/internal/member"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	var store member.Store
	if cfg.PostgresDsn != "" {
		gs, err := member.NewGormStore(cfg.PostgresDsn)
		if err != nil {
			log.Fatal(err)
		}
		store = gs
	} else {
		logger.Warn("no postgresDsn configured, using in-memory member store")
		store = member.NewMemoryStore()
	}

	// Warm the font cache at startup; card generation may be called per-login.
	idcard.Fonts()

	gen := idcard.NewGenerator(cfg, member.StoreAllocator{Store: store})
	h := api.NewHandler(store, gen, logger)

	r := gin.Default()
	api.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Port
	}
	logger.Info("starting server", "addr", "http://localhost:"+port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
