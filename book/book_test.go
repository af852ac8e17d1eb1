package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleLine(t *testing.T) {
	st := Parse("O gato subiu no muro.")

	assert.Equal(t, 1, st.LineCount())
	assert.Equal(t, 1, st.ParagraphCount())

	w, ok := st.WordAtLine(1, 2)
	require.True(t, ok)
	assert.Equal(t, "gato", w)

	w, ok = st.WordInParagraph(1, 1, 5)
	require.True(t, ok)
	assert.Equal(t, "muro.", w)
}

func TestParse_LineSeparators(t *testing.T) {
	for name, text := range map[string]string{
		"lf":    "um dois\ntrês quatro",
		"crlf":  "um dois\r\ntrês quatro",
		"cr":    "um dois\rtrês quatro",
		"mixed": "um dois\r\ntrês quatro",
	} {
		t.Run(name, func(t *testing.T) {
			st := Parse(text)
			assert.Equal(t, 2, st.LineCount())

			w, ok := st.WordAtLine(2, 1)
			require.True(t, ok)
			assert.Equal(t, "três", w)
		})
	}
}

func TestParse_Paragraphs(t *testing.T) {
	text := "\n\nO gato subiu.\nO gato desceu.\n\n   \nO cão correu.\n\n"
	st := Parse(text)

	require.Equal(t, 2, st.ParagraphCount())
	assert.Len(t, st.Paragraphs()[0].Lines, 2)
	assert.Len(t, st.Paragraphs()[1].Lines, 1)

	// Line numbering restarts in each paragraph.
	w, ok := st.WordInParagraph(2, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "cão", w)

	w, ok = st.WordInParagraph(1, 2, 3)
	require.True(t, ok)
	assert.Equal(t, "desceu.", w)
}

func TestParse_BlankLinesKeepLineNumbers(t *testing.T) {
	// Physical line numbering counts blank lines; they just hold no words.
	st := Parse("primeira\n\nterceira")
	assert.Equal(t, 3, st.LineCount())

	w, ok := st.WordAtLine(3, 1)
	require.True(t, ok)
	assert.Equal(t, "terceira", w)

	_, ok = st.WordAtLine(2, 1)
	assert.False(t, ok)
}

func TestParse_LeadingTrailingWhitespaceOnLines(t *testing.T) {
	st := Parse("   gato   muro   ")
	w, ok := st.WordAtLine(1, 1)
	require.True(t, ok)
	assert.Equal(t, "gato", w)
	w, ok = st.WordAtLine(1, 2)
	require.True(t, ok)
	assert.Equal(t, "muro", w)
	_, ok = st.WordAtLine(1, 3)
	assert.False(t, ok)
}

func TestStructure_Bounds(t *testing.T) {
	st := Parse("um dois\n\ntrês")

	for _, tc := range []struct{ line, word int }{
		{0, 1}, {-1, 1}, {4, 1}, {1, 0}, {1, 3}, {3, 2},
	} {
		_, ok := st.WordAtLine(tc.line, tc.word)
		assert.False(t, ok, "line=%d word=%d", tc.line, tc.word)
	}

	for _, tc := range []struct{ p, l, w int }{
		{0, 1, 1}, {3, 1, 1}, {1, 2, 1}, {1, 1, 3}, {99, 1, 1}, {1, 1, 0},
	} {
		_, ok := st.WordInParagraph(tc.p, tc.l, tc.w)
		assert.False(t, ok, "p=%d l=%d w=%d", tc.p, tc.l, tc.w)
	}
}

func TestParse_Empty(t *testing.T) {
	st := Parse("")
	assert.Equal(t, 1, st.LineCount()) // one empty physical line
	assert.Equal(t, 0, st.ParagraphCount())

	st = Parse("   \n \t \n")
	assert.Equal(t, 0, st.ParagraphCount())
}
