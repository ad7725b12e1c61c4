package main

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const suggestPrompt = `Tu es un générateur de niveaux pour un jeu de mots croisés.

Avec uniquement les lettres du mot %q (chaque lettre au plus autant de fois qu'elle y apparaît),
propose jusqu'à %d mots courants de la même langue, de 2 lettres ou plus, du plus courant au moins courant.

Règles :
- Mots en minuscules, sans noms propres, sans abréviations.
- N'inclus pas le mot %q lui-même.
- Réponds UNIQUEMENT avec un tableau JSON de chaînes, sans commentaire ni markdown.`

// WordSuggester proposes candidate words for a seed.
type WordSuggester interface {
	SuggestWords(ctx context.Context, seed string, limit int) ([]string, error)
}

// SuggestWords asks Gemini for words spelled from the letters of seed.
// The answer is returned unfiltered; callers check the letters.
func (g *GeminiClient) SuggestWords(ctx context.Context, seed string, limit int) ([]string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: fmt.Sprintf(suggestPrompt, seed, limit, seed)},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.2)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var words []string
	if err := json.Unmarshal([]byte(text), &words); err != nil {
		return nil, fmt.Errorf("parse words JSON: %w\nraw response: %s", err, text)
	}
	if len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}
