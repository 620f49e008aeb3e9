package main

import (
	"fmt"
	"os"

	"github.com/AGiXT/go-sdk/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real config lives in ~/.agixt/config.yaml.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "agixt:", err)
		os.Exit(1)
	}
}
