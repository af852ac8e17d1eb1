package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects how the book is segmented and how coordinates are formatted.
// An index built under one mode is not valid under another.
type Mode uint8

const (
	// LineWord addresses a word as (line, word). Lines are numbered over the
	// whole book, blank lines included.
	LineWord Mode = iota
	// LineWordChar addresses a single character of a normalized word as
	// (line, word, char). An optional leading page field is decorative and
	// ignored on decode.
	LineWordChar
	// ParagraphLineWord addresses a word as (paragraph, line, word), with
	// line numbers restarting inside each paragraph.
	ParagraphLineWord
	// DateParagraphLineWord is ParagraphLineWord with an opaque date tag
	// prepended on encode and ignored on decode.
	DateParagraphLineWord
)

// Granularity is the unit a mode encodes: whole words or single characters.
type Granularity uint8

const (
	// WordGranularity encodes whole message words.
	WordGranularity Granularity = iota
	// CharGranularity encodes the message character by character.
	CharGranularity
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case LineWord:
		return "line-word"
	case LineWordChar:
		return "line-word-char"
	case ParagraphLineWord:
		return "paragraph-line-word"
	case DateParagraphLineWord:
		return "date-paragraph-line-word"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m <= DateParagraphLineWord
}

// Granularity returns the token unit for the mode.
func (m Mode) Granularity() Granularity {
	if m == LineWordChar {
		return CharGranularity
	}
	return WordGranularity
}

// TokenSeparator is the separator between coordinates in cipher text:
// two spaces for word modes, one space for the character mode.
func (m Mode) TokenSeparator() string {
	if m.Granularity() == CharGranularity {
		return " "
	}
	return "  "
}

// Paragraphed reports whether coordinates carry a paragraph field.
func (m Mode) Paragraphed() bool {
	return m == ParagraphLineWord || m == DateParagraphLineWord
}

// Coordinate is a structured 1-based position inside the book. Unset fields
// are zero. Tag is the opaque decorative leading field (date or page) carried
// by the modes that have one; it is never used to resolve a word.
type Coordinate struct {
	Tag       string `json:"tag,omitempty"`
	Paragraph int    `json:"paragraph,omitempty"`
	Line      int    `json:"line"`
	Word      int    `json:"word"`
	Char      int    `json:"char,omitempty"`
}

// Format renders the coordinate in the wire form of the given mode.
// The decorative field is included only when Tag is non-empty, except for
// DateParagraphLineWord where an empty Tag is replaced by the placeholder
// literal "0000" so the field count stays stable.
func (c Coordinate) Format(mode Mode) string {
	switch mode {
	case LineWord:
		return fmt.Sprintf("%d:%d", c.Line, c.Word)
	case LineWordChar:
		if c.Tag != "" {
			return fmt.Sprintf("%s:%d:%d:%d", c.Tag, c.Line, c.Word, c.Char)
		}
		return fmt.Sprintf("%d:%d:%d", c.Line, c.Word, c.Char)
	case ParagraphLineWord:
		return fmt.Sprintf("%d:%d:%d", c.Paragraph, c.Line, c.Word)
	case DateParagraphLineWord:
		tag := c.Tag
		if tag == "" {
			tag = "0000"
		}
		return fmt.Sprintf("%s:%d:%d:%d", tag, c.Paragraph, c.Line, c.Word)
	default:
		return ""
	}
}

// ParseCoordinate parses a single cipher token into a Coordinate under the
// given mode. The decorative leading field is kept in Tag but otherwise
// discarded. It returns false on a field-count mismatch or a structural
// field that is not a positive integer.
func ParseCoordinate(token string, mode Mode) (Coordinate, bool) {
	fields := strings.Split(token, ":")

	var c Coordinate
	var ok bool
	switch mode {
	case LineWord:
		if len(fields) != 2 {
			return Coordinate{}, false
		}
		ok = parsePositive(fields, &c.Line, &c.Word)
	case LineWordChar:
		switch len(fields) {
		case 3:
			ok = parsePositive(fields, &c.Line, &c.Word, &c.Char)
		case 4:
			c.Tag = fields[0]
			ok = parsePositive(fields[1:], &c.Line, &c.Word, &c.Char)
		default:
			return Coordinate{}, false
		}
	case ParagraphLineWord:
		if len(fields) != 3 {
			return Coordinate{}, false
		}
		ok = parsePositive(fields, &c.Paragraph, &c.Line, &c.Word)
	case DateParagraphLineWord:
		if len(fields) != 4 {
			return Coordinate{}, false
		}
		c.Tag = fields[0]
		ok = parsePositive(fields[1:], &c.Paragraph, &c.Line, &c.Word)
	default:
		return Coordinate{}, false
	}
	if !ok {
		return Coordinate{}, false
	}
	return c, true
}

func parsePositive(fields []string, dst ...*int) bool {
	for i, d := range dst {
		v, err := strconv.Atoi(fields[i])
		if err != nil || v < 1 {
			return false
		}
		*d = v
	}
	return true
}

// Location is one concrete occurrence in the book: the coordinate plus the
// literal text found there, trimmed of boundary punctuation but otherwise
// untouched. Several locations may share a normalized key (homophones).
type Location struct {
	Coordinate
	// Content is the literal occurrence. Re-resolving the coordinate against
	// the same book and mode yields exactly this text.
	Content string `json:"content"`
	// Ordinal is the stable position of this location in index insertion
	// order, used by the encode coverage audit.
	Ordinal uint32 `json:"-"`
}
