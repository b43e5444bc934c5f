package wordgen

import "github.com/abhisek/speechdrill/internal/llm"

// WordsSchema is the structured output requested from the model.
var WordsSchema = &llm.Schema{
	Name:        "practice-words",
	Description: "Real words containing a target speech sound at a given position",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "A common, concrete, single word in lowercase",
						},
						"phoneme_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"description": "Zero-based index of the first letter spelling the target sound",
						},
					},
					"required":             []any{"text", "phoneme_index"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}

type wordsOutput struct {
	Words []struct {
		Text         string `json:"text"`
		PhonemeIndex int    `json:"phoneme_index"`
	} `json:"words"`
}
