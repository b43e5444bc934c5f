// Package wordgen suggests practice words from an LLM for phonemes the
// curated word table does not cover.
package wordgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/speechdrill/internal/llm"
	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

// MaxSuggestions caps a single request.
const MaxSuggestions = 20

// ErrNoSuggestions is returned when the model produced nothing usable.
var ErrNoSuggestions = errors.New("no usable word suggestions")

// Curated is the word table suggestions are de-duplicated against.
type Curated interface {
	wordpool.Source
	HasCurated(symbol string) bool
}

// Config tunes the request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.7}
}

// Suggester asks a provider for words and keeps the ones that pass
// validation.
type Suggester struct {
	provider llm.Provider
	curated  Curated
	config   Config
	log      *logger.Logger
}

func New(provider llm.Provider, curated Curated, cfg Config, log *logger.Logger) *Suggester {
	if curated == nil {
		curated = wordpool.Table{}
	}
	return &Suggester{provider: provider, curated: curated, config: cfg, log: log}
}

// Suggest returns up to n new words for the phoneme at pos. Words already
// in the curated table, repeated words and words whose phoneme index does
// not fit the text or the position are dropped.
func (s *Suggester) Suggest(ctx context.Context, p phoneme.Phoneme, pos phoneme.Position, n int) ([]wordpool.PracticeWord, error) {
	if n <= 0 {
		return nil, nil
	}
	n = min(n, MaxSuggestions)

	seen := make(map[string]bool)
	var exclude []string
	if s.curated.HasCurated(p.Symbol) {
		for _, w := range s.curated.Lookup(p, pos) {
			key := normalize(w.Text)
			if !seen[key] {
				seen[key] = true
				exclude = append(exclude, key)
			}
		}
	}

	req := llm.UserPrompt(systemPrompt, buildUserMessage(p, pos, n, exclude))
	req.Schema = WordsSchema
	req.MaxTokens = s.config.MaxTokens
	req.Temperature = s.config.Temperature

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, llm.PurposeWordSuggest), req)
	if err != nil {
		return nil, fmt.Errorf("suggest words for %s: %w", p.Symbol, err)
	}
	var out wordsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse word suggestions: %w", err)
	}

	var words []wordpool.PracticeWord
	for _, raw := range out.Words {
		if len(words) == n {
			break
		}
		text := normalize(raw.Text)
		if err := checkWord(text, raw.PhonemeIndex, pos); err != nil {
			s.log.Debug("dropping suggestion", "text", raw.Text, "index", raw.PhonemeIndex, "reason", err.Error())
			continue
		}
		if seen[text] {
			s.log.Debug("dropping duplicate suggestion", "text", text)
			continue
		}
		seen[text] = true
		words = append(words, wordpool.PracticeWord{
			Text:         text,
			PhonemeIndex: raw.PhonemeIndex,
			Position:     pos,
			Included:     true,
		})
	}
	if len(words) == 0 {
		return nil, ErrNoSuggestions
	}
	s.log.Info("word suggestions", "phoneme", p.Symbol, "position", string(pos), "requested", n, "kept", len(words))
	return words, nil
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// checkWord validates one suggestion. The index must point inside the
// word; initial sounds start it, final sounds are past the first letter,
// medial sounds sit strictly inside.
func checkWord(text string, index int, pos phoneme.Position) error {
	if text == "" {
		return errors.New("empty word")
	}
	for _, r := range text {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' {
			return fmt.Errorf("not a single word")
		}
	}
	n := utf8.RuneCountInString(text)
	if index < 0 || index >= n {
		return fmt.Errorf("phoneme index %d outside %d letters", index, n)
	}
	switch pos {
	case phoneme.Initial:
		if index != 0 {
			return fmt.Errorf("initial sound at index %d", index)
		}
	case phoneme.Medial:
		if index == 0 || index == n-1 {
			return fmt.Errorf("medial sound at word edge")
		}
	case phoneme.Final:
		if index == 0 {
			return fmt.Errorf("final sound at index 0")
		}
	}
	return nil
}
