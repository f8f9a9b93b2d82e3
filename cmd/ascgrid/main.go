// Command ascgrid checks and rewrites ESRI ASCII grid files.
package main

import (
	"os"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
