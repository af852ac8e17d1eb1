package cipher

import (
	"strings"

	"github.com/emersonbque13/bookcode/book"
	"github.com/emersonbque13/bookcode/model"
	"github.com/emersonbque13/bookcode/normalize"
)

// DecodeResult is the outcome of one decode call. Decode never fails
// globally: tokens that cannot be resolved become the literal "?" and are
// counted in Unresolved. OK is unconditionally true under this contract;
// callers that want a stricter signal can inspect Unresolved.
type DecodeResult struct {
	Plaintext  string
	Unresolved int
	OK         bool
}

// Decode parses a coordinate string back into plaintext by re-deriving the
// book's segmentation (never a prebuilt index) and resolving each coordinate
// against it. Per whitespace-separated token:
//
//   - "[...]" unwraps to its literal content (the encode-side fallback)
//   - "/" decodes to a single space in the character mode
//   - a token with no ":" passes through verbatim
//   - anything else is parsed as a coordinate for the mode; malformed or
//     out-of-range coordinates resolve to "?"
//
// Resolved words are trimmed of boundary punctuation and upper-cased; the
// character mode yields the single upper-cased letter. The policy must match
// the one used to build the cipher so character positions line up.
func Decode(cipherText, bookText string, mode model.Mode, policy normalize.Policy) (DecodeResult, error) {
	if !mode.Valid() {
		return DecodeResult{}, ErrInvalidMode
	}

	st := book.Parse(bookText)
	n := normalize.New(policy)
	charMode := mode.Granularity() == model.CharGranularity

	var out []string
	unresolved := 0

	for _, tok := range strings.Fields(cipherText) {
		switch {
		case len(tok) >= 2 && strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
			out = append(out, tok[1:len(tok)-1])
		case charMode && tok == "/":
			out = append(out, " ")
		case !strings.ContainsRune(tok, ':'):
			out = append(out, tok)
		default:
			word, ok := resolve(st, n, tok, mode)
			if !ok {
				unresolved++
				out = append(out, "?")
				continue
			}
			out = append(out, word)
		}
	}

	sep := " "
	if charMode {
		sep = ""
	}
	return DecodeResult{
		Plaintext:  strings.Join(out, sep),
		Unresolved: unresolved,
		OK:         true,
	}, nil
}

func resolve(st *book.Structure, n *normalize.Normalizer, tok string, mode model.Mode) (string, bool) {
	c, ok := model.ParseCoordinate(tok, mode)
	if !ok {
		return "", false
	}

	switch mode {
	case model.LineWord:
		raw, ok := st.WordAtLine(c.Line, c.Word)
		if !ok {
			return "", false
		}
		return strings.ToUpper(normalize.TrimEdges(raw)), true

	case model.LineWordChar:
		raw, ok := st.WordAtLine(c.Line, c.Word)
		if !ok {
			return "", false
		}
		runes := []rune(n.Key(raw))
		if c.Char < 1 || c.Char > len(runes) {
			return "", false
		}
		return strings.ToUpper(string(runes[c.Char-1])), true

	case model.ParagraphLineWord, model.DateParagraphLineWord:
		raw, ok := st.WordInParagraph(c.Paragraph, c.Line, c.Word)
		if !ok {
			return "", false
		}
		return strings.ToUpper(normalize.TrimEdges(raw)), true

	default:
		return "", false
	}
}
