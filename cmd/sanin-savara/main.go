package main

import (
	"log"

	"sanin-savara/internal/app"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
