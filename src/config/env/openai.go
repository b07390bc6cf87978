package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	OpenAIAPIKey string
	OpenAIModel  = "gpt-4o-mini"
)

func loadOpenAIEnv() {
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	requireEnv(OpenAIAPIKey, "OPENAI_API_KEY")

	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		OpenAIModel = model
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("OpenAI environment done with model %s", OpenAIModel),
	)
}
