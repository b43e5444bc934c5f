package phoneme

import (
	"fmt"
	"sort"
)

// catalog holds the reference phonemes with precomputed indices.
type catalog struct {
	phonemes   []Phoneme
	byKey      map[Key]*Phoneme
	byCategory map[Category][]Phoneme
}

// c is the package-level catalog, built from seed data in init().
var c *catalog

func init() {
	c = buildCatalog(seedPhonemes())
}

func buildCatalog(phonemes []Phoneme) *catalog {
	cat := &catalog{
		phonemes:   phonemes,
		byKey:      make(map[Key]*Phoneme, len(phonemes)),
		byCategory: make(map[Category][]Phoneme),
	}
	for i := range cat.phonemes {
		p := &cat.phonemes[i]
		cat.byKey[p.Key()] = p
		cat.byCategory[p.Category] = append(cat.byCategory[p.Category], *p)
	}
	return cat
}

// All returns every phoneme in catalog order.
func All() []Phoneme {
	out := make([]Phoneme, len(c.phonemes))
	copy(out, c.phonemes)
	return out
}

// Lookup returns the phoneme with the given symbol and language.
func Lookup(symbol string, lang Language) (Phoneme, error) {
	p, ok := c.byKey[Key{Symbol: symbol, Language: lang}]
	if !ok {
		return Phoneme{}, fmt.Errorf("phoneme %s (%s) not found", symbol, lang)
	}
	return *p, nil
}

// ByCategory returns the phonemes in a category, in catalog order.
func ByCategory(cat Category) []Phoneme {
	src := c.byCategory[cat]
	out := make([]Phoneme, len(src))
	copy(out, src)
	return out
}

// ByLanguage returns the phonemes for one language, in catalog order.
func ByLanguage(lang Language) []Phoneme {
	var out []Phoneme
	for _, p := range c.phonemes {
		if p.Language == lang {
			out = append(out, p)
		}
	}
	return out
}

// Subcategory is a named group of phonemes within a category.
type Subcategory struct {
	Name  string
	Items []Phoneme
}

// Subcategories groups a category's phonemes by subcategory name, sorted
// alphabetically. Items keep catalog order.
func Subcategories(cat Category) []Subcategory {
	groups := make(map[string][]Phoneme)
	for _, p := range c.byCategory[cat] {
		groups[p.Subcategory] = append(groups[p.Subcategory], p)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Subcategory, 0, len(names))
	for _, name := range names {
		out = append(out, Subcategory{Name: name, Items: groups[name]})
	}
	return out
}
