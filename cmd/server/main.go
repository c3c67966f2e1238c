package main

import (
	log "github.com/sirupsen/logrus"

	_ "boardy/docs"
	"boardy/internal/config"
	"boardy/internal/server"
)

// @title           Boardy API
// @version         1.0
// @description     In-memory kanban board: columns, tasks, labels and drag-and-drop moves.

// @BasePath  /
// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("Server initialization failed: %v", err)
	}

	s.Run()
}
