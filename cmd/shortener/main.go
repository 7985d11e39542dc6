package main

import (
	"log"
	"os"

	"github.com/avc-dev/shortlinks/internal/app"
)

func main() {
	if err := app.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
