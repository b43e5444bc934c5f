package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/speechdrill/internal/access"
	"github.com/abhisek/speechdrill/internal/phoneme"
)

var phonemesCmd = &cobra.Command{
	Use:   "phonemes",
	Short: "Browse the phoneme reference catalog",
	Long: "Lists phonemes grouped by category and subcategory. ★ marks a favorite, " +
		"✓ a phoneme practiced in a saved session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logToStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		lang := e.language()
		if l, _ := cmd.Flags().GetString("language"); l != "" {
			lang = phoneme.Language(strings.ToLower(l))
		}
		categories := phoneme.Categories()
		if c, _ := cmd.Flags().GetString("category"); c != "" {
			categories = []phoneme.Category{phoneme.Category(strings.ToLower(c))}
		}

		favs, err := e.store.PreferenceRepo().Favorites(cmd.Context())
		if err != nil {
			return fmt.Errorf("load favorites: %w", err)
		}
		done, err := e.store.PreferenceRepo().Completed(cmd.Context())
		if err != nil {
			return fmt.Errorf("load completed: %w", err)
		}
		fav, practiced := toSet(favs), toSet(done)

		gate := access.SubscriptionGate{PremiumUnlocked: e.cfg.PremiumUnlocked}
		w := cmd.OutOrStdout()
		shown := 0
		for _, cat := range categories {
			for _, sub := range phoneme.Subcategories(cat) {
				var rows []phoneme.Phoneme
				for _, p := range sub.Items {
					if p.Language == lang {
						rows = append(rows, p)
					}
				}
				if len(rows) == 0 {
					continue
				}
				fmt.Fprintf(w, "%s / %s\n", cat.DisplayName(), sub.Name)
				for _, p := range rows {
					printPhoneme(w, p, fav[p.Symbol], practiced[p.Symbol], gate.IsUnlocked(p.Symbol))
				}
				fmt.Fprintln(w)
				shown += len(rows)
			}
		}
		if shown == 0 {
			fmt.Fprintln(w, "No phonemes match.")
		}
		return nil
	},
}

func printPhoneme(w io.Writer, p phoneme.Phoneme, favorite, practiced, unlocked bool) {
	fav, done := " ", " "
	if favorite {
		fav = "★"
	}
	if practiced {
		done = "✓"
	}
	lock := ""
	if !unlocked {
		lock = "  (locked)"
	}
	fmt.Fprintf(w, "  %s%s %-7s %-10s e.g. %s%s\n", fav, done, p.Symbol, p.Name, p.Example, lock)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}

// lookupPhoneme accepts "p" or "/p/".
func lookupPhoneme(symbol string, lang phoneme.Language) (phoneme.Phoneme, error) {
	return phoneme.Lookup("/"+phoneme.BareSymbol(symbol)+"/", lang)
}

func init() {
	phonemesCmd.Flags().StringP("category", "c", "", "Only this category (consonants, vowels, blends, diphthongs)")
	phonemesCmd.Flags().StringP("language", "l", "", "Language (english, spanish); defaults to practice.language")
}
