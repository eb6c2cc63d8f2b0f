package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rios0rios0/mcpcatalog/cmd"
)

func main() {
	// Optional .env for agent credentials; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
