package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/quillforge/quill/internal/api/v1/handlers"
	"github.com/quillforge/quill/internal/api/v1/middleware"
	"github.com/quillforge/quill/internal/config"
	"github.com/quillforge/quill/internal/logger"
	"github.com/quillforge/quill/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Setup()

	svcs, err := services.InitializeServices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	r := setupRouter(svcs)

	addr := config.GetListenAddr()
	log.Info().Str("addr", addr).Msg("Quill sidecar starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

func setupRouter(svcs *services.Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RateLimit("global", svcs.GetRedisService()))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	handlers.RegisterV1Routes(r, svcs)
	return r
}
