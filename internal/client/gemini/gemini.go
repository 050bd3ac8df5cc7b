// Package gemini wraps the Google Gemini text-completion API used by the
// assistant's fallback chat and by description suggestions.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Generation parameters carried over from the original client.
const (
	DefaultModel = "gemini-1.5-flash"

	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 1024
)

// Client is a thin completion client: prompt in, text out. The API key is
// checked at call time, so a missing key fails the chat request instead of
// app startup.
type Client struct {
	apiKey string
	model  string

	// newClient is a seam for tests.
	newClient func(ctx context.Context, apiKey string) (*genai.Client, error)
}

func New(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		newClient: func(ctx context.Context, apiKey string) (*genai.Client, error) {
			return genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
		},
	}
}

// Complete sends the prompt and returns the model's text. Provider
// failures are mapped to the package's sentinel errors via Categorize.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	gc, err := c.newClient(ctx, c.apiKey)
	if err != nil {
		return "", Categorize(err)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		TopK:            genai.Ptr[float32](topK),
		TopP:            genai.Ptr[float32](topP),
		MaxOutputTokens: maxOutputTokens,
	}

	resp, err := gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", Categorize(err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrContentBlocked
	}
	return text, nil
}

// SuggestDescription asks the model for a short Spanish description for a
// task title. The prompt is the original app's, verbatim.
func (c *Client) SuggestDescription(ctx context.Context, title string) (string, error) {
	prompt := fmt.Sprintf(
		`Eres un asistente que ayuda a organizar tareas. Dado el título de una tarea "%s", sugiere una descripción breve y útil en español (máximo 80 caracteres). Responde SOLO con la descripción, sin comillas ni explicaciones adicionales.`,
		title,
	)

	out, err := c.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.NewReplacer(`"`, "", "'", "").Replace(out)), nil
}
