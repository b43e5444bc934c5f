package phoneme

import "strings"

// Category groups phonemes for browsing.
type Category string

const (
	CategoryConsonants Category = "consonants"
	CategoryVowels     Category = "vowels"
	CategoryBlends     Category = "blends"
	CategoryDiphthongs Category = "diphthongs"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryConsonants,
		CategoryVowels,
		CategoryBlends,
		CategoryDiphthongs,
	}
}

// DisplayName returns a human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryConsonants:
		return "Consonants"
	case CategoryVowels:
		return "Vowels"
	case CategoryBlends:
		return "Blends"
	case CategoryDiphthongs:
		return "Diphthongs"
	default:
		return string(c)
	}
}

// Language is the language a phoneme belongs to.
type Language string

const (
	English Language = "english"
	Spanish Language = "spanish"
)

// Key identifies a phoneme by value. The same IPA symbol can appear in
// more than one language, so the symbol alone is not enough.
type Key struct {
	Symbol   string
	Language Language
}

func (k Key) String() string {
	return k.Symbol + "@" + string(k.Language)
}

// Phoneme is an immutable reference entry in the catalog.
type Phoneme struct {
	Symbol      string
	Name        string
	Example     string
	Category    Category
	Subcategory string
	Language    Language
}

// Key returns the value identity of the phoneme.
func (p Phoneme) Key() Key {
	return Key{Symbol: p.Symbol, Language: p.Language}
}

// BareSymbol strips the IPA slashes, so "/tʃ/" becomes "tʃ".
func BareSymbol(symbol string) string {
	return strings.Trim(strings.TrimSpace(symbol), "/")
}
