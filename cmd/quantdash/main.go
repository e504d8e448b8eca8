package main

import (
	"os"

	"github.com/wonny/quantdash/cmd/quantdash/commands"
)

// main is the entry point for the quantdash CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/quantdash [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
