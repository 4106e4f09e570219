package cartola

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes accented letters and drops everything outside ASCII,
// so "União" becomes "Uniao". Transformers keep state, hence one per call.
func asciiFold() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
}

// ToSlug converts a team or league name into the slug used by the API URLs,
// e.g. "UNIÃO BRUNÃO F.C" into "uniao-brunao-f-c".
func ToSlug(name string) string {
	folded, _, err := transform.String(asciiFold(), strings.ToLower(name))
	if err != nil {
		folded = strings.ToLower(name)
	}

	slug := strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			return r
		}
		return '-'
	}, folded)

	slug = strings.ReplaceAll(slug, "--", "-")
	return strings.TrimSuffix(slug, "-")
}
