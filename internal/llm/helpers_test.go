package llm

import (
	"encoding/json"
	"net/http"
	"time"
)

// wordsSchema mirrors the shape used for word suggestions.
func wordsSchema() *Schema {
	return &Schema{
		Name:        "test-words",
		Description: "Practice words",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"words": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text":          map[string]any{"type": "string"},
							"phoneme_index": map[string]any{"type": "integer", "minimum": 0},
							"position":      map[string]any{"type": "string", "enum": []any{"initial", "medial", "final"}},
						},
						"required": []any{"text", "phoneme_index"},
					},
				},
			},
			"required": []any{"words"},
		},
	}
}

const wordsJSON = `{"words":[{"text":"sun","phoneme_index":0,"position":"initial"}]}`

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func prompt() Request {
	r := UserPrompt("You suggest speech practice words.", "Suggest words with /s/.")
	r.MaxTokens = 256
	return r
}
