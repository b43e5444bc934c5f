package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/speechdrill/internal/access"
	"github.com/abhisek/speechdrill/internal/logger"
	"github.com/abhisek/speechdrill/internal/practice"
)

type fakeRecorder struct {
	calls int
	fail  error
	got   []practice.SessionRecord
}

func (f *fakeRecorder) SaveSession(_ context.Context, rec practice.SessionRecord) (*practice.SessionRecord, error) {
	f.calls++
	if f.fail != nil {
		return nil, f.fail
	}
	f.got = append(f.got, rec)
	rec.ID = "S1"
	return &rec, nil
}

func testList() practice.List {
	return practice.List{
		ID: "L1",
		Configurations: []practice.Configuration{
			config("a", "/p/", 3),
			config("b", "/s/", 3),
			config("c", "/k/", 2),
		},
	}
}

func TestNewRunner_DropsLockedConfigurations(t *testing.T) {
	gateCalls := 0
	gate := access.GateFunc(func(symbol string) bool {
		gateCalls++
		return access.SubscriptionGate{}.IsUnlocked(symbol)
	})
	r := NewRunner(testList(), gate, seeded(1), &fakeRecorder{}, logger.Nop())

	require.Len(t, r.Configurations(), 2)
	assert.Equal(t, "a", r.Configurations()[0].ID)
	assert.Equal(t, "c", r.Configurations()[1].ID)
	require.Len(t, r.Locked(), 1)
	assert.Equal(t, "b", r.Locked()[0].ID)

	r.Select("a")
	r.Select("b")
	require.NoError(t, r.Start())
	assert.Equal(t, 3, gateCalls, "gate consulted once per configuration, at construction only")
	assert.Len(t, r.Items(), 3)
}

func TestRunner_FinishSavesOnce(t *testing.T) {
	rec := &fakeRecorder{}
	r := NewRunner(testList(), access.SubscriptionGate{PremiumUnlocked: true}, seeded(2), rec, logger.Nop())
	r.Select("a")
	r.Select("c")
	require.NoError(t, r.Start())
	r.Record(Correct)
	r.Advance()
	r.Record(Incorrect)

	saved, err := r.Finish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "S1", saved.ID)
	assert.Equal(t, PhaseCompleted, r.Phase())

	again, err := r.Finish(context.Background())
	require.NoError(t, err)
	assert.Same(t, saved, again)
	assert.Equal(t, 1, rec.calls)

	got := rec.got[0]
	assert.Equal(t, "L1", got.ListID)
	assert.Equal(t, 5, got.TotalWords)
	assert.Equal(t, 1, got.Correct)
	assert.Equal(t, 1, got.Incorrect)
	assert.Equal(t, 3, got.Skipped)
	assert.Len(t, got.Results, 2)
}

func TestRunner_FailedSaveCanRetry(t *testing.T) {
	rec := &fakeRecorder{fail: errors.New("disk full")}
	r := NewRunner(testList(), access.SubscriptionGate{}, seeded(3), rec, logger.Nop())
	r.Select("a")
	require.NoError(t, r.Start())
	r.Record(Correct)
	r.EndNow()

	_, err := r.Finish(context.Background())
	require.Error(t, err)
	assert.False(t, r.Saved())
	before := r.Summary()
	assert.Equal(t, 1, before.Correct)

	rec.fail = nil
	saved, err := r.Finish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Correct)
	assert.Equal(t, before, r.Summary())
	assert.Equal(t, 2, rec.calls)
}

func TestRunner_FinishBeforeStart(t *testing.T) {
	r := NewRunner(testList(), nil, seeded(1), &fakeRecorder{}, nil)
	_, err := r.Finish(context.Background())
	assert.ErrorIs(t, err, ErrNotStarted)
}
