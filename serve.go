package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/color-game/palette-api/api"
	"github.com/color-game/palette-api/scheduler"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Address to listen on, overrides HTTP_PORT (e.g. :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	config := loadConfig()
	if servePort != "" {
		config.HTTPPort = servePort
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Start scheduler for the daily palette
	dailyScheduler := scheduler.NewScheduler()
	dailyScheduler.Start()
	defer dailyScheduler.Stop()

	app := api.NewApplication(config, dailyScheduler)

	log.Println("Palette API Starting...")
	if err := app.Serve(http.NewServeMux()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
