// Package main implements the knesset command, which runs scripted
// legislative sessions against an in-memory assembly and prints the outcome.
package main

import (
	"fmt"
	"os"
)

const (
	Version = "0.1.0"
	appName = "knesset"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
