package main

import (
	"os"

	"contactdesk-cli/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Best-effort: a local .env may define CONTACTDESK_DIR / CONTACTDESK_EXPORT_DIR.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
