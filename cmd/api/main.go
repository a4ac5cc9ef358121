package main

import (
	"os"

	"github.com/ozank/classhub/internal/pkg/logger"
	"github.com/ozank/classhub/internal/server"
)

// @title ClassHub API
// @version 1.0
// @description Course management backend: roster imports, enrollments and per-course score statistics
// @BasePath /api

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
