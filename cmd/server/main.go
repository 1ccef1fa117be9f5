// Package main is the entry point for the terrain server and its tooling
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/terrain-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "terrain-api",
	Short: "Procedural terrain image server",
	Long:  `terrain-api renders seeded fractal-noise heightmaps as 256x256 PNG images over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
