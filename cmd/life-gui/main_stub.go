//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "life-gui opens a window and is only built with -tags ebiten.")
	fmt.Fprintln(os.Stderr, "Try: go run -tags ebiten ./cmd/life-gui, or run the terminal version with go run .")
	os.Exit(2)
}
