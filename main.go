package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/color-game/palette-api/api"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "palette-api",
	Short: "Palette API server and CLI",
	Long:  "Generates ten-step shade ramps from a base color and scores shade pairs for WCAG text contrast.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the server configuration from the environment
func loadConfig() api.Config {
	return api.Config{
		HTTPPort:           getEnv("HTTP_PORT", ":8080"),
		JwtSecret:          getEnv("JWT_SECRET", "your-secret-key-change-this"),
		ShareTokenDuration: getEnvInt("SHARE_TOKEN_DURATION", 604800), // 7 days
		AllowedOrigins:     getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:            getEnvBool("DEV_MODE", true),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
