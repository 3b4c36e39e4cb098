// main.go
package main

import (
	"TUI_yt_companion/internal/handler/cli"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	if err := cli.NewRootCommand(cli.Wire).Execute(); err != nil {
		os.Exit(1)
	}
}
