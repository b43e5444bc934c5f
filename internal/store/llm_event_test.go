package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMEvents_AppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	s.now = tick(time.Unix(1_700_000_000, 0))
	repo := s.LLMEventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "word-suggest",
		InputTokens: 100, OutputTokens: 40, LatencyMs: 300, Success: true,
		RequestBody: "[user]\nwords", ResponseBody: `{"words":[]}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "word-suggest",
		InputTokens: 50, OutputTokens: 10, LatencyMs: 100, Success: false, ErrorMessage: "rate limited",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "other", LatencyMs: 200, Success: true,
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "other", events[0].Purpose, "newest first")
	assert.Equal(t, "rate limited", events[1].ErrorMessage)
	assert.False(t, events[1].Success)

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "word-suggest"})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	first, err := repo.GetLLMEvent(ctx, filtered[1].ID)
	require.NoError(t, err)
	assert.Equal(t, `{"words":[]}`, first.ResponseBody)
	assert.Equal(t, time.Unix(1_700_000_001, 0).UnixNano(), first.Timestamp.UnixNano())

	_, err = repo.GetLLMEvent(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLLMUsage(t *testing.T) {
	repo := openTestStore(t).LLMEventRepo()
	ctx := context.Background()
	for _, d := range []LLMRequestEventData{
		{Model: "a", Purpose: "word-suggest", InputTokens: 10, OutputTokens: 1, LatencyMs: 100},
		{Model: "a", Purpose: "word-suggest", InputTokens: 20, OutputTokens: 2, LatencyMs: 300},
		{Model: "b", Purpose: "other", InputTokens: 5, OutputTokens: 5, LatencyMs: 50},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsage{Key: "other", Calls: 1, InputTokens: 5, OutputTokens: 5, AvgLatencyMs: 50}, byPurpose[0])
	assert.Equal(t, LLMUsage{Key: "word-suggest", Calls: 2, InputTokens: 30, OutputTokens: 3, AvgLatencyMs: 200}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "a", byModel[0].Key)
}
