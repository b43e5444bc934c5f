package phoneme

import (
	"fmt"
	"strings"
)

// Position is where in a word the target phoneme occurs.
type Position string

const (
	Initial Position = "initial"
	Medial  Position = "medial"
	Final   Position = "final"
)

// Positions returns all positions in canonical order.
func Positions() []Position {
	return []Position{Initial, Medial, Final}
}

// DisplayName returns the capitalized label used in listings.
func (p Position) DisplayName() string {
	switch p {
	case Initial:
		return "Initial"
	case Medial:
		return "Medial"
	case Final:
		return "Final"
	default:
		return "Unknown"
	}
}

// Description explains the position to the user.
func (p Position) Description() string {
	switch p {
	case Initial:
		return "Sound at the beginning of the word"
	case Medial:
		return "Sound in the middle of the word"
	case Final:
		return "Sound at the end of the word"
	default:
		return ""
	}
}

// ParsePosition parses a position name, case-insensitively.
func ParsePosition(s string) (Position, error) {
	switch Position(strings.ToLower(strings.TrimSpace(s))) {
	case Initial:
		return Initial, nil
	case Medial:
		return Medial, nil
	case Final:
		return Final, nil
	}
	return "", fmt.Errorf("unknown position %q (want initial, medial or final)", s)
}

// Level is the graduated practice difficulty, ordered from the most
// reduced form to the most naturalistic.
type Level int

const (
	LevelIsolation Level = iota
	LevelSyllable
	LevelWord
	LevelPhrase
	LevelSentence
)

// Levels returns all levels in order.
func Levels() []Level {
	return []Level{LevelIsolation, LevelSyllable, LevelWord, LevelPhrase, LevelSentence}
}

func (l Level) String() string {
	switch l {
	case LevelIsolation:
		return "isolation"
	case LevelSyllable:
		return "syllable"
	case LevelWord:
		return "word"
	case LevelPhrase:
		return "phrase"
	case LevelSentence:
		return "sentence"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// DisplayName returns the capitalized label used in listings.
func (l Level) DisplayName() string {
	switch l {
	case LevelIsolation:
		return "Isolation"
	case LevelSyllable:
		return "Syllable"
	case LevelWord:
		return "Words"
	case LevelPhrase:
		return "Phrases"
	case LevelSentence:
		return "Sentences"
	default:
		return "Unknown"
	}
}

// Description explains what is practiced at this level.
func (l Level) Description() string {
	switch l {
	case LevelIsolation:
		return "Practice the sound by itself"
	case LevelSyllable:
		return "Practice in simple syllables"
	case LevelWord:
		return "Practice in single words"
	case LevelPhrase:
		return "Practice in short phrases"
	case LevelSentence:
		return "Practice in complete sentences"
	default:
		return ""
	}
}

// Examples returns a short sample of what a card looks like at this level.
func (l Level) Examples() string {
	switch l {
	case LevelIsolation:
		return "e.g., /s/, /t/, /k/"
	case LevelSyllable:
		return "e.g., sa, si, so, su"
	case LevelWord:
		return "e.g., sun, sock, say"
	case LevelPhrase:
		return "e.g., sunny day, six socks"
	case LevelSentence:
		return "e.g., Sam sees six seals."
	default:
		return ""
	}
}

// ParseLevel parses a level name. Plural forms ("words", "phrases",
// "sentences") are accepted as they appear in older records.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "isolation":
		return LevelIsolation, nil
	case "syllable", "syllables":
		return LevelSyllable, nil
	case "word", "words":
		return LevelWord, nil
	case "phrase", "phrases":
		return LevelPhrase, nil
	case "sentence", "sentences":
		return LevelSentence, nil
	}
	return LevelWord, fmt.Errorf("unknown level %q", s)
}
