package practice

import (
	"testing"
	"time"

	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole, want int
	}{
		{2, 4, 50},
		{2, 3, 67},
		{1, 3, 33},
		{0, 0, 0},
		{5, 0, 0},
		{10, 10, 100},
	}
	for _, tt := range tests {
		if got := Percent(tt.part, tt.whole); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}

func TestSessionRecord_Percentage(t *testing.T) {
	r := SessionRecord{TotalWords: 4, Correct: 2, Incorrect: 1, Skipped: 1}
	if got := r.Percentage(); got != 50 {
		t.Errorf("Percentage() = %d, want 50", got)
	}
	if got := r.Ratio(); got != 0.5 {
		t.Errorf("Ratio() = %v, want 0.5", got)
	}
	if got := (SessionRecord{}).Ratio(); got != 0 {
		t.Errorf("empty Ratio() = %v, want 0", got)
	}
}

func TestSessionRecord_FormattedDate(t *testing.T) {
	if got := (SessionRecord{}).FormattedDate(); got != "Unknown Date" {
		t.Errorf("got %q, want %q", got, "Unknown Date")
	}
	r := SessionRecord{Date: time.Date(2025, 5, 17, 15, 4, 0, 0, time.Local)}
	if got := r.FormattedDate(); got != "May 17, 2025 at 3:04 PM" {
		t.Errorf("got %q, want %q", got, "May 17, 2025 at 3:04 PM")
	}
}

func TestConfiguration_Summary(t *testing.T) {
	c := Configuration{PhonemeSymbol: "/p/", Position: phoneme.Initial, Level: phoneme.LevelWord}
	if got := c.Summary(); got != "/p/ - Initial (Words)" {
		t.Errorf("Summary() = %q, want %q", got, "/p/ - Initial (Words)")
	}
}

func TestList_TotalWordCount_CountsDistinctText(t *testing.T) {
	l := List{Configurations: []Configuration{
		{Words: []wordpool.PracticeWord{{ID: "1", Text: "pat"}, {ID: "2", Text: "pen"}}},
		{Words: []wordpool.PracticeWord{{ID: "3", Text: "pat"}}},
	}}
	if got := l.TotalWordCount(); got != 2 {
		t.Errorf("TotalWordCount() = %d, want 2", got)
	}
}

func TestList_MostRecentSession(t *testing.T) {
	var l List
	if _, ok := l.MostRecentSession(); ok {
		t.Error("expected no session for empty list")
	}
	l.Sessions = []SessionRecord{{ID: "new"}, {ID: "old"}}
	s, ok := l.MostRecentSession()
	if !ok || s.ID != "new" {
		t.Errorf("MostRecentSession() = %v, %v; want new", s.ID, ok)
	}
}

func TestConfiguration_HasWord(t *testing.T) {
	c := Configuration{Words: []wordpool.PracticeWord{{ID: "w1", Text: "pat"}}}
	if !c.HasWord("w1") {
		t.Error("HasWord(w1) = false, want true")
	}
	if c.HasWord("pat|0|initial") {
		t.Error("stored words are keyed by ID, not text")
	}
}
