package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/agentgrid/canvas-engine/internal/server"
)

func main() {
	_ = godotenv.Load()
	port := getenv("PORT", "8082")

	s := server.New(slog.Default())

	slog.Info("canvasd listening", "port", port)
	log.Fatal(http.ListenAndServe(":"+port, s.Routes()))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
