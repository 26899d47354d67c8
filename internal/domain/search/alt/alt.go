// Package alt expands a normalized query into alternate spellings used to
// widen substring matching: the query itself, its Cyrillic-to-Latin
// transliteration, and known foreign spellings of composer names.
package alt

import (
	"strings"

	"github.com/partitura-app/partitura/internal/domain/search/norm"
)

// translit maps lower-case Cyrillic letters to their Latin equivalents.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sch", 'ы': "y", 'э': "e", 'ю': "yu",
	'я': "ya",
}

// aliasGroup binds a canonical Cyrillic spelling to its known foreign variants.
// Keys are stored pre-normalized so substring checks run directly against
// normalized queries.
type aliasGroup struct {
	key      string
	variants []string
}

var composerAliases = []aliasGroup{
	{norm.Normalize("чайковский"), []string{"tchaikovsky", "tschaikovsky", "chaikovsky"}},
	{norm.Normalize("рахманинов"), []string{"rachmaninoff", "rachmaninov"}},
	{norm.Normalize("стравинский"), []string{"stravinsky", "strawinsky"}},
	{norm.Normalize("прокофьев"), []string{"prokofiev", "prokofieff"}},
	{norm.Normalize("шостакович"), []string{"shostakovich", "schostakowitsch"}},
	{norm.Normalize("мусоргский"), []string{"mussorgsky", "moussorgsky"}},
	{norm.Normalize("моцарт"), []string{"mozart"}},
	{norm.Normalize("бах"), []string{"bach"}},
	{norm.Normalize("бетховен"), []string{"beethoven"}},
	{norm.Normalize("шопен"), []string{"chopin"}},
	{norm.Normalize("дебюсси"), []string{"debussy"}},
	{norm.Normalize("равель"), []string{"ravel"}},
}

// Generate returns the deduplicated, insertion-ordered alternative set for a
// normalized query. The input is always the first element, so the result is
// never empty.
func Generate(text string) []string {
	alts := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)

	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		alts = append(alts, s)
	}

	add(text)
	add(Transliterate(text))

	for _, g := range composerAliases {
		if strings.Contains(text, g.key) {
			for _, v := range g.variants {
				add(v)
			}
		}
	}

	return alts
}

// Transliterate converts Cyrillic letters to Latin using the fixed table.
// Unmapped runes pass through unchanged.
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if lat, ok := translit[r]; ok {
			b.WriteString(lat)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
