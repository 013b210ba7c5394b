package main

import (
	"log"

	"moaburke/glosor/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("glosor: %v", err)
	}
}
