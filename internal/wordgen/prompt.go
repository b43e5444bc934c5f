package wordgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/speechdrill/internal/phoneme"
)

const systemPrompt = `You help speech-language pathologists build articulation practice lists.

Rules:
- Suggest real, common, picturable words a child would know.
- Every word must contain the target sound at the requested position (initial, medial or final), judged by pronunciation, not spelling.
- Give phoneme_index as the zero-based character index of the first letter that spells the target sound.
- One word per entry, lowercase, no phrases, no proper nouns.
- Avoid words that contain the target sound more than once.
- Do not repeat any word from the "already in use" list.`

// buildUserMessage describes the target and the words to avoid.
func buildUserMessage(p phoneme.Phoneme, pos phoneme.Position, n int, exclude []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target sound: %s (%s, as in %q)\n", p.Symbol, p.Name, p.Example)
	fmt.Fprintf(&b, "Language: %s\n", p.Language)
	fmt.Fprintf(&b, "Position: %s (%s)\n", pos, strings.ToLower(pos.Description()))
	fmt.Fprintf(&b, "Number of words: %d\n", n)

	b.WriteString("\nAlready in use:\n")
	if len(exclude) == 0 {
		b.WriteString("None")
	} else {
		b.WriteString(strings.Join(exclude, ", "))
	}
	return b.String()
}
