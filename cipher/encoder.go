package cipher

import (
	"errors"
	"math/rand"
	"strings"
	"unicode"

	"github.com/emersonbque13/bookcode/index"
	"github.com/emersonbque13/bookcode/model"
	"github.com/emersonbque13/bookcode/normalize"
)

var (
	// ErrModeMismatch is returned when the requested mode differs from the
	// mode the index was built under. An index is only valid for its own mode.
	ErrModeMismatch = errors.New("cipher: index mode does not match requested mode")

	// ErrInvalidMode is returned for a mode value outside the enumeration.
	ErrInvalidMode = errors.New("cipher: invalid mode")
)

// EncodeResult is the outcome of one encode call. Encoding never aborts on
// unindexable tokens: the cipher text is always a best-effort full result and
// Missing reports what fell back to the bracket escape.
type EncodeResult struct {
	// CipherText is the encoded message.
	CipherText string
	// Missing lists the original tokens that had no index candidates,
	// deduplicated, in first-appearance order.
	Missing []string
	// OK is true iff Missing is empty.
	OK bool
	// Coverage reports which index locations the homophone selector used.
	Coverage *Coverage
}

// Encode maps each token of the message to one coordinate drawn uniformly at
// random from the candidate set for that token's key. rng may be nil, in
// which case the shared math/rand source is used; pass a seeded *rand.Rand
// for reproducible output.
//
// Word modes split the message on whitespace; tokens that normalize to the
// empty key (bare punctuation) pass through verbatim as already-plaintext.
// The character mode walks the message rune by rune: whitespace emits the
// reserved separator "/", and runes outside the indexable alphabet pass
// through unencoded.
func Encode(idx *index.Index, mode model.Mode, message, tag string, rng *rand.Rand) (EncodeResult, error) {
	if !mode.Valid() {
		return EncodeResult{}, ErrInvalidMode
	}
	if idx.Mode() != mode {
		return EncodeResult{}, ErrModeMismatch
	}

	n := normalize.New(idx.Policy())
	if mode.Granularity() == model.CharGranularity {
		return encodeChars(idx, mode, message, tag, n, rng), nil
	}
	return encodeWords(idx, mode, message, tag, n, rng), nil
}

func encodeWords(idx *index.Index, mode model.Mode, message, tag string, n *normalize.Normalizer, rng *rand.Rand) EncodeResult {
	var out []string
	missing := newMissingSet()
	cov := newCoverage(idx.LocationCount())

	for _, tok := range strings.Fields(message) {
		key := n.Key(tok)
		if key == "" {
			// Nothing left after the strip: the token is already plaintext
			// punctuation and passes through unmodified.
			out = append(out, tok)
			continue
		}

		cands := idx.Lookup(key)
		if len(cands) == 0 {
			missing.add(tok)
			out = append(out, "["+tok+"]")
			continue
		}

		loc := cands[intn(rng, len(cands))]
		cov.record(loc.Ordinal)

		c := loc.Coordinate
		if mode == model.DateParagraphLineWord {
			c.Tag = tag
		}
		out = append(out, c.Format(mode))
	}

	return EncodeResult{
		CipherText: strings.Join(out, mode.TokenSeparator()),
		Missing:    missing.items,
		OK:         missing.empty(),
		Coverage:   cov,
	}
}

func encodeChars(idx *index.Index, mode model.Mode, message, tag string, n *normalize.Normalizer, rng *rand.Rand) EncodeResult {
	var out []string
	missing := newMissingSet()
	cov := newCoverage(idx.LocationCount())

	for _, r := range message {
		if unicode.IsSpace(r) {
			out = append(out, "/")
			continue
		}

		raw := string(r)
		key := n.Key(raw)
		if key == "" {
			out = append(out, raw)
			continue
		}

		cands := idx.Lookup(key)
		if len(cands) == 0 {
			missing.add(raw)
			out = append(out, "["+raw+"]")
			continue
		}

		loc := cands[intn(rng, len(cands))]
		cov.record(loc.Ordinal)

		c := loc.Coordinate
		c.Tag = tag // page field; omitted from the wire form when empty
		out = append(out, c.Format(mode))
	}

	return EncodeResult{
		CipherText: strings.Join(out, mode.TokenSeparator()),
		Missing:    missing.items,
		OK:         missing.empty(),
		Coverage:   cov,
	}
}

func intn(rng *rand.Rand, n int) int {
	if n <= 1 {
		return 0
	}
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}

// missingSet collects unencodable tokens once each, preserving order.
type missingSet struct {
	seen  map[string]struct{}
	items []string
}

func newMissingSet() *missingSet {
	return &missingSet{seen: make(map[string]struct{})}
}

func (m *missingSet) add(tok string) {
	if _, ok := m.seen[tok]; ok {
		return
	}
	m.seen[tok] = struct{}{}
	m.items = append(m.items, tok)
}

func (m *missingSet) empty() bool {
	return len(m.items) == 0
}
