package session

import (
	"github.com/abhisek/speechdrill/internal/practice"
)

// Summary holds the aggregated results of one session.
type Summary struct {
	Total     int
	Correct   int
	Incorrect int
	Skipped   int
	Results   []practice.ConfigurationResult
}

// Aggregate counts responses overall and per configuration. An item with
// no response slot counts as skipped. Per-configuration rows count the
// items whose word is in that configuration's word set, so a word in no
// set contributes to no row.
func Aggregate(configs []practice.Configuration, items []Item, responses []Response) Summary {
	s := Summary{Total: len(items)}
	for i := range items {
		switch responseAt(responses, i) {
		case Correct:
			s.Correct++
		case Incorrect:
			s.Incorrect++
		default:
			s.Skipped++
		}
	}

	for _, c := range configs {
		members := make(map[string]bool, len(c.Words))
		for _, w := range c.Words {
			members[w.Key()] = true
		}

		row := practice.ConfigurationResult{ConfigurationID: c.ID, PhonemeSymbol: c.PhonemeSymbol}
		for i, item := range items {
			if !members[item.Word.Key()] {
				continue
			}
			row.Total++
			switch responseAt(responses, i) {
			case Correct:
				row.Correct++
			case Incorrect:
				row.Incorrect++
			default:
				row.Skipped++
			}
		}
		s.Results = append(s.Results, row)
	}
	return s
}

func responseAt(responses []Response, i int) Response {
	if i < len(responses) {
		return responses[i]
	}
	return Skipped
}

// Answered is the number of cards marked correct or incorrect.
func (s Summary) Answered() int {
	return s.Correct + s.Incorrect
}

// Accuracy is the live results score: correct over answered cards,
// skips excluded.
func (s Summary) Accuracy() int {
	return practice.Percent(s.Correct, s.Answered())
}

// StoredPercentage is the history score: correct over all cards, skips
// included.
func (s Summary) StoredPercentage() int {
	return practice.Percent(s.Correct, s.Total)
}

// Record converts the summary into a session record for listID. ID and
// Date are assigned by the store.
func (s Summary) Record(listID string) practice.SessionRecord {
	results := make([]practice.ConfigurationResult, len(s.Results))
	copy(results, s.Results)
	return practice.SessionRecord{
		ListID:     listID,
		TotalWords: s.Total,
		Correct:    s.Correct,
		Incorrect:  s.Incorrect,
		Skipped:    s.Skipped,
		Results:    results,
	}
}
