package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Policy selects how accented letters are keyed.
type Policy uint8

const (
	// PolicyStrict keeps accented letters as distinct key characters
	// ("vovó" and "vovo" produce different keys).
	PolicyStrict Policy = iota
	// PolicyFoldAccents decomposes accented letters and drops their
	// combining marks, so "Vovó!" and "vovo" share a key.
	PolicyFoldAccents
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyFoldAccents:
		return "fold-accents"
	default:
		return "unknown"
	}
}

// Normalizer turns raw tokens into canonical lookup keys. Normalization is a
// pure function: identical input always yields the identical key.
type Normalizer struct {
	policy Policy
}

// New creates a Normalizer for the given policy.
func New(policy Policy) *Normalizer {
	return &Normalizer{policy: policy}
}

// Policy returns the active policy.
func (n *Normalizer) Policy() Policy {
	return n.policy
}

// Key normalizes a raw token into its lookup key. The result may be empty
// (e.g. a token made entirely of punctuation); empty keys never enter an
// index and are handled by the caller.
//
// Steps, in order: canonical decomposition (fold policy only), lowercase,
// then strip every rune that is not a letter, digit or underscore. Combining
// marks produced by the decomposition are not letters and fall to the strip,
// which is what folds "á" to "a".
func (n *Normalizer) Key(raw string) string {
	s := raw
	if n.policy == PolicyFoldAccents {
		s = norm.NFD.String(s)
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimEdges strips leading and trailing non-alphanumeric runes from a raw
// word. This is the display cleanup applied to stored and decoded words; it
// preserves interior accents and case, unlike full key normalization.
func TrimEdges(raw string) string {
	return strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
