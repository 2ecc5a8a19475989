package main

import (
	"net/http"
	"os"
	"time"

	"tagvault/internal/api"
	"tagvault/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	router, err := api.SetupRouter()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up router")
	}

	addr := ":" + config.GetPort()
	log.Info().Str("addr", addr).Str("tagFile", config.GetTagFilePath()).Msg("tagvault listening")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
