package main

import (
	"log/slog"
	"os"

	server "cadastro/internal/adapter/http"
	"cadastro/pkg/config"
)

func main() {
	cfg, err := config.Load()

	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := server.StartServer(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
