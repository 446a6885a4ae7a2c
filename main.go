package main

import (
	"os"

	"github.com/PinjaMari/earn-to-own/internal/app"
	log "github.com/sirupsen/logrus"
)

func main() {
	configureLogging()

	log.Info("Starting earn-to-own")
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}

func configureLogging() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		log.SetLevel(log.InfoLevel)
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Fatalf("invalid LOG_LEVEL %q: %v", level, err)
	}
	log.SetLevel(parsed)
}
