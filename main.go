package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tatianab/text-adventure/internal/app"
)

// Plays the default adventure with configuration taken from ADVENTURE_*
// environment variables. cmd/game accepts a config file.
func main() {
	if err := app.Run(context.Background(), ""); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
