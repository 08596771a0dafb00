package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careerbridge/internal/gateway"
	"github.com/jonathan/careerbridge/internal/server"
	"github.com/jonathan/careerbridge/internal/store"
)

var (
	servePort int
	dataDir   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the CareerBridge pages, profile, job search, CV tailoring, and interview coach as REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory for the local database (defaults to $CAREERBRIDGE_DATA_DIR, then the XDG data home)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	dir := dataDir
	if dir == "" {
		dir = os.Getenv("CAREERBRIDGE_DATA_DIR")
	}
	if dir == "" {
		dir = store.DefaultDir()
	}

	st, err := store.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	log.Printf("Using local database at %s", st.Path())

	client, err := gateway.NewGeminiClient(context.Background(), gateway.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	srv := server.New(server.Config{
		Port:   servePort,
		Store:  st,
		Client: client,
	})
	return srv.Start()
}
