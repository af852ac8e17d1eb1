package index

import (
	"github.com/emersonbque13/bookcode/book"
	"github.com/emersonbque13/bookcode/model"
	"github.com/emersonbque13/bookcode/normalize"
)

// Index maps normalized keys to every location in the book where the key
// occurs, in first-occurrence order. It is built fresh from (book text, mode)
// and is immutable afterwards; a changed book always means a full rebuild.
type Index struct {
	mode   model.Mode
	policy normalize.Policy
	keys   map[string][]model.Location
	total  uint32
}

// Build walks the book text under the given mode and produces the lookup
// index. Repeated occurrences of a key are appended, never deduplicated:
// every extra occurrence is one more homophonic candidate. Tokens whose key
// normalizes to the empty string are skipped entirely.
func Build(text string, mode model.Mode, n *normalize.Normalizer) *Index {
	idx := &Index{
		mode:   mode,
		policy: n.Policy(),
		keys:   make(map[string][]model.Location),
	}

	st := book.Parse(text)

	switch mode {
	case model.LineWord:
		for li, line := range st.Lines() {
			for wi, word := range line.Words {
				idx.addWord(n, word, model.Coordinate{Line: li + 1, Word: wi + 1})
			}
		}
	case model.LineWordChar:
		for li, line := range st.Lines() {
			for wi, word := range line.Words {
				idx.addChars(n, word, li+1, wi+1)
			}
		}
	case model.ParagraphLineWord, model.DateParagraphLineWord:
		for pi, para := range st.Paragraphs() {
			for li, line := range para.Lines {
				for wi, word := range line.Words {
					idx.addWord(n, word, model.Coordinate{
						Paragraph: pi + 1,
						Line:      li + 1,
						Word:      wi + 1,
					})
				}
			}
		}
	}

	return idx
}

// addWord indexes one raw word at the given coordinate.
func (idx *Index) addWord(n *normalize.Normalizer, word string, c model.Coordinate) {
	key := n.Key(word)
	if key == "" {
		return
	}
	idx.append(key, model.Location{
		Coordinate: c,
		Content:    normalize.TrimEdges(word),
	})
}

// addChars indexes every rune of the normalized word individually. Character
// positions are 1-based over the normalized key, so punctuation inside the
// raw word does not shift the numbering.
func (idx *Index) addChars(n *normalize.Normalizer, word string, line, pos int) {
	key := n.Key(word)
	if key == "" {
		return
	}
	for ci, r := range []rune(key) {
		idx.append(string(r), model.Location{
			Coordinate: model.Coordinate{Line: line, Word: pos, Char: ci + 1},
			Content:    string(r),
		})
	}
}

func (idx *Index) append(key string, loc model.Location) {
	loc.Ordinal = idx.total
	idx.total++
	idx.keys[key] = append(idx.keys[key], loc)
}

// Lookup returns every candidate location for a key, in book order. The
// returned slice is shared and must not be mutated.
func (idx *Index) Lookup(key string) []model.Location {
	return idx.keys[key]
}

// Mode returns the addressing mode the index was built under.
func (idx *Index) Mode() model.Mode {
	return idx.mode
}

// Policy returns the normalization policy the index was built under.
func (idx *Index) Policy() normalize.Policy {
	return idx.policy
}

// KeyCount returns the number of distinct keys.
func (idx *Index) KeyCount() int {
	return len(idx.keys)
}

// LocationCount returns the total number of indexed locations.
func (idx *Index) LocationCount() int {
	return int(idx.total)
}

// Stats summarizes an index for callers and logs.
type Stats struct {
	Mode      model.Mode
	Policy    normalize.Policy
	Keys      int
	Locations int
}

// Stats returns a snapshot of index statistics.
func (idx *Index) Stats() Stats {
	return Stats{
		Mode:      idx.mode,
		Policy:    idx.policy,
		Keys:      len(idx.keys),
		Locations: int(idx.total),
	}
}
