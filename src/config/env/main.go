package env

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
)

// Load reads the environment once at process start. Components receive their
// values explicitly at construction; nothing reads the environment afterwards.
func Load() {
	loadEnv()
	loadServerEnv()
	loadWhatsAppEnv()
	loadOpenAIEnv()
}

func loadEnv() {
	pterm.DefaultLogger.Info(
		"Loading environment variables...",
	)

	err := godotenv.Load(".env")
	if err != nil {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("Some error occurred loading the environment file at root directory: %s", err),
		)
		pterm.DefaultLogger.Warn(
			"Using environment variables from the system",
		)
	}
}

func requireEnv(value, name string) {
	if value == "" {
		pterm.DefaultLogger.Fatal(
			fmt.Sprintf("Missing required environment variable %s", name),
		)
	}
}
