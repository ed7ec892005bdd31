package main

import (
	"log"

	"github.com/futig/blog-generator/internal/builder"
)

func main() {
	app, err := builder.BuildTUI()
	if err != nil {
		log.Fatal("Failed to build terminal UI:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Terminal UI error:", err)
	}
}
