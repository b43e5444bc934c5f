package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/speechdrill/internal/practice"
)

func itemsFor(configs ...practice.Configuration) []Item {
	var items []Item
	for _, c := range configs {
		for _, w := range c.Words {
			items = append(items, Item{Word: w, ConfigurationID: c.ID, Level: c.Level})
		}
	}
	return items
}

func TestAggregate_AccuracyVersusStoredPercentage(t *testing.T) {
	c := config("a", "/p/", 4)
	s := Aggregate([]practice.Configuration{c}, itemsFor(c), []Response{Correct, Correct, Incorrect, Skipped})

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Correct)
	assert.Equal(t, 1, s.Incorrect)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 67, s.Accuracy())
	assert.Equal(t, 50, s.StoredPercentage())
}

func TestAggregate_NothingAnswered(t *testing.T) {
	c := config("a", "/p/", 3)
	s := Aggregate([]practice.Configuration{c}, itemsFor(c), make([]Response, 3))
	assert.Equal(t, 0, s.Accuracy())
	assert.Equal(t, 0, s.StoredPercentage())
	assert.Equal(t, 3, s.Skipped)

	empty := Aggregate(nil, nil, nil)
	assert.Equal(t, 0, empty.Accuracy())
	assert.Equal(t, 0, empty.StoredPercentage())
}

func TestAggregate_PerConfigurationBreakdown(t *testing.T) {
	a := config("a", "/p/", 3)
	b := config("b", "/t/", 2)
	items := itemsFor(a, b)
	responses := []Response{Correct, Incorrect, Skipped, Correct, Correct}

	s := Aggregate([]practice.Configuration{a, b}, items, responses)
	require.Len(t, s.Results, 2)
	assert.Equal(t, practice.ConfigurationResult{ConfigurationID: "a", PhonemeSymbol: "/p/", Total: 3, Correct: 1, Incorrect: 1, Skipped: 1}, s.Results[0])
	assert.Equal(t, practice.ConfigurationResult{ConfigurationID: "b", PhonemeSymbol: "/t/", Total: 2, Correct: 2}, s.Results[1])
}

func TestAggregate_InvariantHolds(t *testing.T) {
	configs := []practice.Configuration{config("a", "/p/", 6), config("b", "/t/", 4), config("c", "/k/", 5)}
	for seed := uint64(1); seed <= 25; seed++ {
		tr := NewTracker(configs)
		for _, c := range configs {
			tr.Select(c.ID)
		}
		tr.SetMaxWordsPerConfiguration(int(seed%5) + 1)
		require.NoError(t, tr.Start(seeded(seed)))
		for i := 0; tr.Phase() == PhaseInProgress; i++ {
			tr.Record(Response((int(seed) + i) % 3))
			if i == int(seed%7) {
				tr.EndNow()
				break
			}
			tr.Advance()
		}

		s := Aggregate(configs, tr.Items(), tr.Responses())
		assert.Equal(t, s.Total, s.Correct+s.Incorrect+s.Skipped, "seed %d overall", seed)
		sum := 0
		for _, r := range s.Results {
			assert.Equal(t, r.Total, r.Correct+r.Incorrect+r.Skipped, "seed %d config %s", seed, r.ConfigurationID)
			sum += r.Total
		}
		assert.Equal(t, s.Total, sum, "seed %d: every item belongs to exactly one configuration", seed)
	}
}

func TestAggregate_MissingResponsesCountAsSkipped(t *testing.T) {
	c := config("a", "/p/", 3)
	s := Aggregate([]practice.Configuration{c}, itemsFor(c), []Response{Correct})
	assert.Equal(t, 1, s.Correct)
	assert.Equal(t, 2, s.Skipped)
	assert.Equal(t, 2, s.Results[0].Skipped)
}

func TestAggregate_ForeignWordCountsOnlyOverall(t *testing.T) {
	a := config("a", "/p/", 1)
	stray := config("z", "/z/", 1)
	items := itemsFor(a, stray)

	s := Aggregate([]practice.Configuration{a}, items, []Response{Correct, Correct})
	assert.Equal(t, 2, s.Total)
	require.Len(t, s.Results, 1)
	assert.Equal(t, 1, s.Results[0].Total)
}

func TestSummary_Record(t *testing.T) {
	c := config("a", "/p/", 2)
	s := Aggregate([]practice.Configuration{c}, itemsFor(c), []Response{Correct, Incorrect})
	rec := s.Record("L1")

	assert.Equal(t, "L1", rec.ListID)
	assert.Equal(t, 2, rec.TotalWords)
	assert.Equal(t, 1, rec.Correct)
	assert.Equal(t, 1, rec.Incorrect)
	assert.Equal(t, 50, rec.Percentage())
	require.Len(t, rec.Results, 1)

	rec.Results[0].Correct = 99
	assert.Equal(t, 1, s.Results[0].Correct, "Record must copy result rows")
}
