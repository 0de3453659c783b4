package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MinNameLength is the shortest cleaned name (in characters) accepted as a patient.
const MinNameLength = 3

var (
	// (11) 1234-5678, 11-1234-5678, 011 1234 5678
	phonePattern = regexp.MustCompile(`\(?\d{2,4}\)?\s*-?\s*\d{4}\s*-?\s*\d{4}`)
	// 1151234567
	localPhonePattern = regexp.MustCompile(`\d{10,11}`)
	// DNI 12345678, DNI:12345678
	dniPrefixPattern = regexp.MustCompile(`(?i)DNI\s*:?\s*\d{7,8}`)
	// 12345678 (DNI)
	dniSuffixPattern = regexp.MustCompile(`(?i)\d{7,8}\s*\(?DNI\)?`)
	longNumberPattern = regexp.MustCompile(`\d{7,}`)
	edgePunctPattern  = regexp.MustCompile(`^[^\p{L}\p{N}_]+|[^\p{L}\p{N}_]+$`)
)

// CleanValue cleans a grid value. Non-text values yield "".
func CleanValue(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return CleanName(s)
}

// CleanName strips phone numbers, national ID numbers and stray punctuation
// from a cell text and returns a capitalised display name. The result is ""
// when nothing usable remains.
func CleanName(raw string) string {
	if !utf8.ValidString(raw) {
		return ""
	}
	name := strings.TrimSpace(norm.NFC.String(raw))

	// Annotations such as "- DNI 12345678" or "- cel" follow a hyphen.
	if i := strings.Index(name, "-"); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	name = phonePattern.ReplaceAllString(name, "")
	name = localPhonePattern.ReplaceAllString(name, "")
	name = dniPrefixPattern.ReplaceAllString(name, "")
	name = dniSuffixPattern.ReplaceAllString(name, "")
	name = removeStandaloneNumbers(name)
	name = edgePunctPattern.ReplaceAllString(name, "")

	return capitalizeWords(name)
}

// IsPlausibleName reports whether a cleaned name is long enough to be kept.
func IsPlausibleName(name string) bool {
	return utf8.RuneCountInString(name) >= MinNameLength
}

// removeStandaloneNumbers drops runs of 7+ digits that are not glued to a
// letter, digit or underscore on either side. RE2's \b is ASCII-only, so the
// boundary check is done here to treat accented letters as word characters.
func removeStandaloneNumbers(s string) string {
	locs := longNumberPattern.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if !isBoundary(s, start, end) {
			continue
		}
		b.WriteString(s[last:start])
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

func isBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// capitalizeWords upper-cases the first letter of every whitespace-separated
// word and joins the words with single spaces. The rest of each word is kept
// as written.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	upper := cases.Upper(language.Spanish)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
