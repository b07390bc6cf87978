package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var ServerPort = "3000"

func loadServerEnv() {
	if port := os.Getenv("PORT"); port != "" {
		ServerPort = port
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Server environment done with port %s", ServerPort),
	)
}
