// Command rays is the terminal entry point for the path tracer: it
// parses a JSON scene file, drives a render, and writes a PNG (and
// optionally a terminal preview). Grounded on the teacher's
// cmd/web-raytracer/frontend/frontend.go for the overall "drive a
// render, get back pixels, display them" shape, replacing its
// browser/websocket surface with a plain CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "rays",
	Short:         "A physically-based offline path tracer",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(renderCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
