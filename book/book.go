package book

import (
	"strings"
)

// Line is one physical line of the book, pre-split into whitespace-separated
// words. Raw is the line before trimming; Words is empty for blank lines.
type Line struct {
	Raw   string
	Words []string
}

// Paragraph is a maximal run of non-blank lines.
type Paragraph struct {
	Lines []Line
}

// Structure is the derived segmentation of a book text: its physical lines
// (for the line-addressed modes) and its paragraphs (for the
// paragraph-addressed modes). It is immutable once parsed.
type Structure struct {
	lines      []Line
	paragraphs []Paragraph
}

var lineSeparators = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse derives the segmentation of a book text. All three line separator
// conventions (\r\n, \r, \n) are treated as equivalent. Paragraphs are runs
// of non-blank lines; leading and trailing blank runs contribute nothing.
func Parse(text string) *Structure {
	rawLines := strings.Split(lineSeparators.Replace(text), "\n")

	st := &Structure{lines: make([]Line, len(rawLines))}

	var current []Line
	flush := func() {
		if len(current) > 0 {
			st.paragraphs = append(st.paragraphs, Paragraph{Lines: current})
			current = nil
		}
	}

	for i, raw := range rawLines {
		line := Line{Raw: raw, Words: strings.Fields(raw)}
		st.lines[i] = line

		if len(line.Words) == 0 {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return st
}

// LineCount returns the number of physical lines, blank lines included.
func (s *Structure) LineCount() int {
	return len(s.lines)
}

// ParagraphCount returns the number of paragraphs.
func (s *Structure) ParagraphCount() int {
	return len(s.paragraphs)
}

// Lines returns the physical lines in order.
func (s *Structure) Lines() []Line {
	return s.lines
}

// Paragraphs returns the paragraphs in order.
func (s *Structure) Paragraphs() []Paragraph {
	return s.paragraphs
}

// WordAtLine resolves a (line, word) coordinate against the physical lines.
// Both indices are 1-based; it returns false when either is out of range.
func (s *Structure) WordAtLine(line, word int) (string, bool) {
	if line < 1 || line > len(s.lines) {
		return "", false
	}
	words := s.lines[line-1].Words
	if word < 1 || word > len(words) {
		return "", false
	}
	return words[word-1], true
}

// WordInParagraph resolves a (paragraph, line, word) coordinate. All indices
// are 1-based and line numbering restarts inside each paragraph.
func (s *Structure) WordInParagraph(paragraph, line, word int) (string, bool) {
	if paragraph < 1 || paragraph > len(s.paragraphs) {
		return "", false
	}
	lines := s.paragraphs[paragraph-1].Lines
	if line < 1 || line > len(lines) {
		return "", false
	}
	words := lines[line-1].Words
	if word < 1 || word > len(words) {
		return "", false
	}
	return words[word-1], true
}
