package phoneme

import (
	"fmt"
	"strings"
)

// Validate checks the built-in catalog.
func Validate() error {
	return validatePhonemes(c.phonemes)
}

// validatePhonemes performs the structural checks on a phoneme set.
// Returns a combined error describing all problems found, or nil if valid.
func validatePhonemes(phonemes []Phoneme) error {
	var errs []string

	seen := make(map[Key]bool, len(phonemes))
	categories := make(map[Category]bool)

	for _, p := range phonemes {
		if seen[p.Key()] {
			errs = append(errs, fmt.Sprintf("duplicate phoneme: %s", p.Key()))
		}
		seen[p.Key()] = true
		categories[p.Category] = true

		if !strings.HasPrefix(p.Symbol, "/") || !strings.HasSuffix(p.Symbol, "/") || len(BareSymbol(p.Symbol)) == 0 {
			errs = append(errs, fmt.Sprintf("phoneme %s: symbol must be written as /x/", p.Key()))
		}
		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("phoneme %s: missing name", p.Key()))
		}
		if p.Subcategory == "" {
			errs = append(errs, fmt.Sprintf("phoneme %s: missing subcategory", p.Key()))
		}
		if p.Language != English && p.Language != Spanish {
			errs = append(errs, fmt.Sprintf("phoneme %s: unknown language %q", p.Key(), p.Language))
		}
	}

	for _, cat := range Categories() {
		if !categories[cat] {
			errs = append(errs, fmt.Sprintf("category %q has no phonemes", cat))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("phoneme catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
