package wordgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/speechdrill/internal/llm"
	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

func lookup(t *testing.T, symbol string) phoneme.Phoneme {
	t.Helper()
	p, err := phoneme.Lookup(symbol, phoneme.English)
	require.NoError(t, err)
	return p
}

func reply(body string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(body)}
}

func TestSuggest_KeepsValidWords(t *testing.T) {
	mock := llm.NewMockProvider(reply(`{"words":[
		{"text":"Sun","phoneme_index":0},
		{"text":"sock","phoneme_index":0},
		{"text":"sun","phoneme_index":0},
		{"text":"bus","phoneme_index":2},
		{"text":"soap dish","phoneme_index":0},
		{"text":"seal","phoneme_index":9}
	]}`))
	s := New(mock, nil, DefaultConfig(), nil)

	words, err := s.Suggest(context.Background(), lookup(t, "/s/"), phoneme.Initial, 10)
	require.NoError(t, err)

	var texts []string
	for _, w := range words {
		texts = append(texts, w.Text)
		assert.Equal(t, phoneme.Initial, w.Position)
		assert.True(t, w.Included)
	}
	assert.Equal(t, []string{"sun", "sock"}, texts)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Same(t, WordsSchema, req.Schema)
	assert.Contains(t, req.Messages[0].Content, "Target sound: /s/")
	assert.Contains(t, req.Messages[0].Content, "Already in use:\nNone")
}

func TestSuggest_ExcludesCuratedWords(t *testing.T) {
	mock := llm.NewMockProvider(reply(`{"words":[
		{"text":"pat","phoneme_index":0},
		{"text":"pig","phoneme_index":0},
		{"text":"pen","phoneme_index":0}
	]}`))
	s := New(mock, wordpool.Table{}, DefaultConfig(), nil)

	words, err := s.Suggest(context.Background(), lookup(t, "/p/"), phoneme.Initial, 5)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "pig", words[0].Text)

	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "pat, pen, pie, park, push")
}

func TestSuggest_TruncatesToN(t *testing.T) {
	mock := llm.NewMockProvider(reply(`{"words":[
		{"text":"rabbit","phoneme_index":2},
		{"text":"baby","phoneme_index":2},
		{"text":"ribbon","phoneme_index":2}
	]}`))
	s := New(mock, nil, DefaultConfig(), nil)

	words, err := s.Suggest(context.Background(), lookup(t, "/b/"), phoneme.Medial, 2)
	require.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Number of words: 2")
}

func TestSuggest_NothingUsable(t *testing.T) {
	mock := llm.NewMockProvider(reply(`{"words":[{"text":"","phoneme_index":0}]}`))
	s := New(mock, nil, DefaultConfig(), nil)

	_, err := s.Suggest(context.Background(), lookup(t, "/s/"), phoneme.Final, 3)
	assert.ErrorIs(t, err, ErrNoSuggestions)
}

func TestSuggest_ProviderError(t *testing.T) {
	s := New(llm.NewMockProvider(), nil, DefaultConfig(), nil)

	_, err := s.Suggest(context.Background(), lookup(t, "/s/"), phoneme.Final, 3)
	var unavail *llm.ErrProviderUnavailable
	require.True(t, errors.As(err, &unavail), "got %v", err)
	assert.True(t, strings.HasPrefix(err.Error(), "suggest words for /s/"))
}

func TestSuggest_NonPositiveCount(t *testing.T) {
	mock := llm.NewMockProvider()
	words, err := New(mock, nil, DefaultConfig(), nil).Suggest(context.Background(), lookup(t, "/s/"), phoneme.Final, 0)
	assert.NoError(t, err)
	assert.Nil(t, words)
	assert.Zero(t, mock.CallCount())
}

func TestCheckWord(t *testing.T) {
	tests := []struct {
		text    string
		index   int
		pos     phoneme.Position
		wantErr bool
	}{
		{"sun", 0, phoneme.Initial, false},
		{"sun", 1, phoneme.Initial, true},
		{"happy", 2, phoneme.Medial, false},
		{"happy", 0, phoneme.Medial, true},
		{"happy", 4, phoneme.Medial, true},
		{"bus", 2, phoneme.Final, false},
		{"bus", 0, phoneme.Final, true},
		{"bus", 3, phoneme.Final, true},
		{"niño", 2, phoneme.Medial, false},
		{"jack-o", 0, phoneme.Initial, false},
		{"two words", 0, phoneme.Initial, true},
		{"", 0, phoneme.Initial, true},
	}
	for _, tt := range tests {
		err := checkWord(tt.text, tt.index, tt.pos)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkWord(%q, %d, %s) = %v, wantErr %v", tt.text, tt.index, tt.pos, err, tt.wantErr)
		}
	}
}
