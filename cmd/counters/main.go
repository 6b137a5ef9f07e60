// Command counters shows the counter gallery in the terminal, replays trigger
// scripts against it, renders snapshots and validates gallery configs.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; flags and the real environment still apply.
	_ = godotenv.Load()

	a := newApp()
	if err := a.execute(newRootCmd(a)); err != nil {
		os.Exit(1)
	}
}
