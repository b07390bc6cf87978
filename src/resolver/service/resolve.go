package resolver_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	catalog_entity "github.com/dexel-inc/ia-cc-test/src/catalog/entity"
	resolver_model "github.com/dexel-inc/ia-cc-test/src/resolver/model"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const completionTimeout = 30 * time.Second

// completionAPI is the slice of the OpenAI client the resolver needs. Tests
// substitute a deterministic stub.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Resolver maps free-form customer text onto catalog entries through a
// language model. The catalog is only context for the model; the resolver
// itself does no matching and never re-ranks what the model returns.
type Resolver struct {
	client       completionAPI
	model        string
	instructions string
	canonical    map[string]catalog_entity.CatalogEntry
	limiter      *rate.Limiter
}

// New builds a resolver backed by the OpenAI API.
func New(apiKey, model string, entries []catalog_entity.CatalogEntry) (*Resolver, error) {
	return NewWithClient(openai.NewClient(apiKey), model, entries)
}

// NewWithClient builds a resolver on any completion client.
func NewWithClient(client completionAPI, model string, entries []catalog_entity.CatalogEntry) (*Resolver, error) {
	instructions, err := buildInstructions(entries)
	if err != nil {
		return nil, err
	}

	canonical := make(map[string]catalog_entity.CatalogEntry, len(entries))
	for _, entry := range entries {
		canonical[entry.SlugID()] = entry
	}

	return &Resolver{
		client:       client,
		model:        model,
		instructions: instructions,
		canonical:    canonical,
		// 3 requests per second, burst of 5
		limiter: rate.NewLimiter(rate.Limit(3), 5),
	}, nil
}

// Resolve asks the model which catalog entries the customer text refers to.
// A legitimate "nothing matches" is a normal no-match result; errors are
// reserved for an unreachable model or model output that breaks the contract.
func (r *Resolver) Resolve(ctx context.Context, customerText string) (resolver_model.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	if err := r.limiter.Wait(ctx); err != nil {
		return resolver_model.NoMatch(), &resolver_model.UnavailableError{Err: err}
	}

	response, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: r.instructions},
			{Role: openai.ChatMessageRoleUser, Content: userMessage(customerText)},
		},
		Temperature: 0,
	})
	if err != nil {
		return resolver_model.NoMatch(), &resolver_model.UnavailableError{
			RateLimited: isThrottled(err),
			Err:         err,
		}
	}
	if len(response.Choices) == 0 {
		return resolver_model.NoMatch(), &resolver_model.ContractViolationError{
			Reason: "completion carried no choices",
		}
	}

	raw := StripMarkdownFences(response.Choices[0].Message.Content)
	return r.interpret(raw)
}

// interpret parses the sanitized model output. Parsing governs the outcome:
// null and the empty array normalize to no-match, a non-empty array of
// catalog-shaped entries is a match, anything else is a contract violation.
func (r *Resolver) interpret(raw string) (resolver_model.Result, error) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return resolver_model.NoMatch(), &resolver_model.ContractViolationError{
			Reason: fmt.Sprintf("output is not valid JSON: %v", err),
			Raw:    raw,
		}
	}

	if decoded == nil {
		return resolver_model.NoMatch(), nil
	}
	if _, ok := decoded.([]any); !ok {
		return resolver_model.NoMatch(), &resolver_model.ContractViolationError{
			Reason: "output is neither an array nor null",
			Raw:    raw,
		}
	}

	var returned []catalog_entity.CatalogEntry
	if err := json.Unmarshal([]byte(raw), &returned); err != nil {
		return resolver_model.NoMatch(), &resolver_model.ContractViolationError{
			Reason: fmt.Sprintf("array entries do not have the catalog shape: %v", err),
			Raw:    raw,
		}
	}
	if len(returned) == 0 {
		return resolver_model.NoMatch(), nil
	}

	// The model only selects; shop locations always come from the catalog.
	matches := make([]catalog_entity.CatalogEntry, 0, len(returned))
	for _, entry := range returned {
		anchored, ok := r.canonical[entry.SlugID()]
		if !ok {
			return resolver_model.NoMatch(), &resolver_model.ContractViolationError{
				Reason: fmt.Sprintf("entry %q is not part of the catalog", entry.Item),
				Raw:    raw,
			}
		}
		matches = append(matches, anchored)
	}

	return resolver_model.Matched(matches), nil
}

func isThrottled(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
