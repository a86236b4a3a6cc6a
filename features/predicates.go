package features

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// enumeratorPattern matches a leading numeric enumerator ("1.", "2.3.1"),
// a dash or asterisk, or a bullet glyph, followed by whitespace.
var enumeratorPattern = regexp.MustCompile(`^\s*(\d+\.?(\d+\.?)*|-|\*|\x{2022})\s+`)

// terminalPunctuation is the fixed set of sentence terminators checked by
// the ends_with_punctuation feature.
const terminalPunctuation = ".!?;:"

// titleCaser capitalizes the first letter of each word without lowering the
// rest, so acronyms survive the round trip in isTitleCase.
var titleCaser = cases.Title(language.Und, cases.NoLower)

// isAllCaps reports whether the text is entirely uppercase. Text shorter
// than minLength never qualifies, and at least one cased letter is required.
func isAllCaps(text string, minLength int) bool {
	if len([]rune(text)) < minLength {
		return false
	}

	hasCased := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

// isTitleCase reports whether each word starts with a capital letter. It is
// implemented as a fixed point of the title caser: text already in title
// case is unchanged by it.
func isTitleCase(text string) bool {
	if text == "" {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}
	return titleCaser.String(text) == text
}

// endsWithPunctuation reports whether the text ends with one of the fixed
// sentence terminators.
func endsWithPunctuation(text string) bool {
	if text == "" {
		return false
	}
	return strings.ContainsRune(terminalPunctuation, rune(text[len(text)-1]))
}

// startsWithNumberOrBullet reports whether the text begins with an
// enumerator or bullet glyph followed by whitespace.
func startsWithNumberOrBullet(text string) bool {
	return enumeratorPattern.MatchString(text)
}
