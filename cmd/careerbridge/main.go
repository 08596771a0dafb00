// Package main provides the entry point for the CareerBridge France server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerbridge",
	Short: "CareerBridge France API Server",
	Long:  "CareerBridge helps international students navigate the French job market: AI job matching, CV tailoring for French recruitment standards, and mock interview coaching via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
