package wordfmt

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

// fixedRand always returns the same index.
type fixedRand int

func (r fixedRand) IntN(n int) int { return int(r) % n }

func word(text string, idx int, pos phoneme.Position) wordpool.PracticeWord {
	return wordpool.PracticeWord{Text: text, PhonemeIndex: idx, Position: pos, Included: true}
}

func TestFormat_Isolation(t *testing.T) {
	f := &Formatter{Rand: fixedRand(0)}
	tests := []struct {
		w    wordpool.PracticeWord
		want string
	}{
		{word("happy", 2, phoneme.Medial), "p"},
		{word("chip", 0, phoneme.Initial), "c"},
		{word("niño", 2, phoneme.Medial), "ñ"},
		{word("Example word 1", 40, phoneme.Final), "Example word 1"},
		{word("pat", -1, phoneme.Initial), "pat"},
		{word("pat", 3, phoneme.Final), "pat"},
	}
	for _, tt := range tests {
		if got := f.Format(tt.w, phoneme.LevelIsolation); got != tt.want {
			t.Errorf("Format(%q, isolation) = %q, want %q", tt.w.Text, got, tt.want)
		}
	}
}

func TestFormat_Syllable(t *testing.T) {
	f := &Formatter{Rand: fixedRand(0)}
	tests := []struct {
		w    wordpool.PracticeWord
		want string
	}{
		{word("Park", 0, phoneme.Initial), "pa"},
		{word("soap", 3, phoneme.Final), "ap"},
		{word("happy", 2, phoneme.Medial), "app"},
		{word("apple", 1, phoneme.Medial), "app"},
		{word("a", 0, phoneme.Initial), "a"},
		{word("Example word 1", 3, phoneme.Medial), "amp"},
		{word("Teacher", 0, phoneme.Medial), "te"},
		{word("Teacher", 6, phoneme.Medial), "er"},
		{word("Teacher", 7, phoneme.Medial), "teacher"},
		{word("Teacher", -3, phoneme.Medial), "teacher"},
		{word("Hi", 9, phoneme.Medial), "hi"},
		{word("", 0, phoneme.Medial), ""},
	}
	for _, tt := range tests {
		if got := f.Format(tt.w, phoneme.LevelSyllable); got != tt.want {
			t.Errorf("Format(%q, syllable) = %q, want %q", tt.w.Text, got, tt.want)
		}
	}
}

func TestFormat_Word(t *testing.T) {
	f := New()
	w := word("Cupcake", 2, phoneme.Medial)
	if got := f.Format(w, phoneme.LevelWord); got != "Cupcake" {
		t.Errorf("got %q, want %q", got, "Cupcake")
	}
}

func TestFormat_Phrase(t *testing.T) {
	f := &Formatter{Rand: fixedRand(1)}
	if got := f.Format(word("pen", 0, phoneme.Initial), phoneme.LevelPhrase); got != "my little pen" {
		t.Errorf("got %q, want %q", got, "my little pen")
	}
}

func TestFormat_Sentence(t *testing.T) {
	f := &Formatter{Rand: fixedRand(4)}
	if got := f.Format(word("cup", 2, phoneme.Final), phoneme.LevelSentence); got != "Can you find the cup?" {
		t.Errorf("got %q, want %q", got, "Can you find the cup?")
	}
}

func TestFormat_PhraseAndSentenceAlwaysContainWord(t *testing.T) {
	f := &Formatter{Rand: rand.New(rand.NewPCG(7, 11))}
	w := word("teacher", 3, phoneme.Medial)
	for i := 0; i < 50; i++ {
		for _, lvl := range []phoneme.Level{phoneme.LevelPhrase, phoneme.LevelSentence} {
			got := f.Format(w, lvl)
			if !strings.Contains(got, "teacher") {
				t.Fatalf("Format(%v) = %q, missing word", lvl, got)
			}
		}
	}
}

func TestFormat_NilRandUsesGlobal(t *testing.T) {
	f := &Formatter{}
	got := f.Format(word("pie", 0, phoneme.Initial), phoneme.LevelPhrase)
	if !strings.HasSuffix(got, " pie") {
		t.Errorf("got %q, want a phrase ending in pie", got)
	}
}
