package main

import (
	"os"

	"github.com/KirkDiggler/montecarlo/cmd/simulate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
