package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", wordsJSON, false},
		{"optional field omitted", `{"words":[{"text":"bus","phoneme_index":2}]}`, false},
		{"missing required", `{"words":[{"text":"bus"}]}`, true},
		{"wrong type", `{"words":[{"text":"bus","phoneme_index":"two"}]}`, true},
		{"negative index", `{"words":[{"text":"bus","phoneme_index":-1}]}`, true},
		{"bad enum", `{"words":[{"text":"bus","phoneme_index":2,"position":"middle"}]}`, true},
		{"empty list", `{"words":[]}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(wordsSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() = %v, wantErr %v", err, tt.wantErr)
			}
			var invalid *ErrInvalidResponse
			if err != nil && !errors.As(err, &invalid) {
				t.Fatalf("err = %T, want *ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema rejected content: %v", err)
	}
}

func TestValidateResponse_GoLiteralSchema(t *testing.T) {
	schema := &Schema{
		Name: "test-go-literals",
		Definition: map[string]any{
			"type":     "object",
			"required": []string{"text"},
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
		},
	}
	if err := validateResponse(schema, json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected []string required list to be enforced")
	}
}
