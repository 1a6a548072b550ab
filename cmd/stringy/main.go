// File: main.go
// Title: stringy Command Entry Point
// Description: Runs the stringy command tree and maps failures to exit
//              status 1.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/stringy/cmd/stringy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
