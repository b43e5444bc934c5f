package store

import (
	"context"
	"time"

	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // exact purpose match when set
	From    time.Time // timestamp >= From
}

// ListRepo manages practice lists with their configurations, words and
// session history.
type ListRepo interface {
	CreateList(ctx context.Context, name, description string) (*practice.List, error)
	RenameList(ctx context.Context, id, name, description string) error

	// DeleteList removes the list with its configurations, words and
	// sessions.
	DeleteList(ctx context.Context, id string) error

	// GetList returns the list fully loaded, or ErrNotFound.
	GetList(ctx context.Context, id string) (*practice.List, error)

	// Lists returns every list, newest first, fully loaded.
	Lists(ctx context.Context) ([]practice.List, error)

	AddConfiguration(ctx context.Context, listID string, p phoneme.Phoneme, pos phoneme.Position, level phoneme.Level) (*practice.Configuration, error)
	GetConfiguration(ctx context.Context, id string) (*practice.Configuration, error)
	DeleteConfiguration(ctx context.Context, id string) error

	// Configurations returns a list's configurations ordered by symbol.
	Configurations(ctx context.Context, listID string) ([]practice.Configuration, error)

	AddWord(ctx context.Context, configID string, w wordpool.PracticeWord) (*wordpool.PracticeWord, error)
	RemoveWord(ctx context.Context, wordID string) error

	// ReplaceWords swaps a configuration's whole word set in one
	// transaction. Only included words are stored.
	ReplaceWords(ctx context.Context, configID string, words []wordpool.PracticeWord) error

	// Sessions returns a list's sessions, most recent first.
	Sessions(ctx context.Context, listID string) ([]practice.SessionRecord, error)

	// SaveSession stores a finished session with its result rows and
	// stamps the list's last practiced time. ID and Date are assigned
	// here.
	SaveSession(ctx context.Context, rec practice.SessionRecord) (*practice.SessionRecord, error)
}

// PreferenceRepo stores user preference flags.
type PreferenceRepo interface {
	// ToggleFavorite flips a symbol's favorite flag and returns the new
	// state.
	ToggleFavorite(ctx context.Context, symbol string) (bool, error)
	Favorites(ctx context.Context) ([]string, error)

	MarkCompleted(ctx context.Context, exercise string) error
	Completed(ctx context.Context) ([]string, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMEventRepo records and reads LLM request events.
type LLMEventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event, or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
