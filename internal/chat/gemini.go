package chat

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Gemini implements Completer with the Google Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini completer for model.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Complete(ctx context.Context, c Completion) (string, error) {
	contents := make([]*genai.Content, 0, len(c.History)+1)
	for _, turn := range c.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(c.Message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.Temperature),
		MaxOutputTokens: c.MaxTokens,
	}
	if c.System != "" {
		config.SystemInstruction = genai.NewContentFromText(c.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	var out strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					out.WriteString(part.Text)
				}
			}
			if out.Len() > 0 {
				break
			}
		}
	}

	return out.String(), nil
}
