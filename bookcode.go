// Package bookcode provides an embedded book-cipher codec for Go.
//
// A book cipher replaces each word (or letter) of a message with the
// coordinates of an occurrence of that word in an agreed-upon book. Both
// parties hold the same text; the cipher output is just a list of
// coordinates like "12:3" (line 12, word 3).
//
// The package supports four addressing modes:
//
//   - LineWord: "L:W" coordinates over global line numbers
//   - LineWordChar: "P:L:W:C" letter-level coordinates
//   - ParagraphLineWord: "Pa:L:W" with paragraph-relative lines
//   - DateParagraphLineWord: "Date:Pa:L:W" with an opaque leading tag
//
// # Quick Start
//
//	ctx := context.Background()
//	bc, err := bookcode.New(bookText, model.LineWord,
//	    bookcode.WithNormalization(normalize.PolicyFoldAccents),
//	)
//	if err != nil {
//	    panic(err)
//	}
//
//	enc, err := bc.Encode(ctx, "meet at dawn")
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(enc.CipherText) // e.g. "42:7  3:1  17:4"
//
//	dec, err := bc.Decode(ctx, enc.CipherText)
//	fmt.Println(dec.Plaintext) // "MEET AT DAWN"
//
// Encoding is homophonic: a word occurring many times in the book maps to a
// coordinate drawn uniformly at random from its occurrences, so repeated
// plaintext words produce varying cipher tokens. Inject a seeded rand.Rand
// via WithRand for reproducible output.
//
// Decoding never consults the index. It re-derives the book structure from
// the raw text on every call, which keeps the decode path equivalent to a
// human reader counting lines and words.
//
// # Persistence
//
// SaveToWriter writes a compressed snapshot of the book and settings;
// NewFromReader restores it and rebuilds the index from the text:
//
//	var buf bytes.Buffer
//	if err := bc.SaveToWriter(ctx, &buf); err != nil { ... }
//	restored, err := bookcode.NewFromReader(&buf)
package bookcode

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/emersonbque13/bookcode/cipher"
	"github.com/emersonbque13/bookcode/index"
	"github.com/emersonbque13/bookcode/model"
	"github.com/emersonbque13/bookcode/normalize"
	"github.com/emersonbque13/bookcode/snapshot"
)

// state is the immutable pair of book text and the index derived from it.
// Published through an atomic pointer so readers never see one without the
// other.
type state struct {
	bookText string
	index    *index.Index
}

// BookCode is a book-cipher codec bound to one book text and one addressing
// mode. Safe for concurrent use: Encode and Decode are read-only after the
// index is published, and SetBook swaps the whole state atomically.
type BookCode struct {
	mode    model.Mode
	opts    options
	metrics MetricsCollector
	logger  *Logger

	mu    sync.Mutex // serializes SetBook
	state atomic.Pointer[state]
}

// New creates a codec for the given book text and addressing mode.
// The index is built eagerly; a whitespace-only book returns ErrEmptyBook.
func New(bookText string, mode model.Mode, optFns ...Option) (*BookCode, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, mode)
	}

	opts := applyOptions(optFns)
	bc := &BookCode{
		mode:    mode,
		opts:    opts,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}
	if err := bc.SetBook(bookText); err != nil {
		return nil, err
	}
	return bc, nil
}

// NewFromReader restores a codec from a snapshot written by SaveToWriter.
// The index is rebuilt from the snapshot's book text, so book and index can
// never drift apart. The snapshot's normalization policy is authoritative;
// a WithNormalization option is ignored.
func NewFromReader(r io.Reader, optFns ...Option) (*BookCode, error) {
	bundle, err := snapshot.Read(r)
	if err != nil {
		return nil, &ErrInvalidSnapshot{cause: err}
	}
	optFns = append(optFns, WithNormalization(bundle.Policy))
	return New(bundle.BookText, bundle.Mode, optFns...)
}

// SetBook replaces the book text and rebuilds the index. On error the
// previous book stays active.
func (bc *BookCode) SetBook(bookText string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if len(strings.Fields(bookText)) == 0 {
		return ErrEmptyBook
	}

	start := time.Now()
	idx := index.Build(bookText, bc.mode, normalize.New(bc.opts.policy))
	stats := idx.Stats()

	bc.metrics.RecordIndexBuild(stats.Keys, stats.Locations, time.Since(start), nil)
	bc.logger.LogIndexBuild(context.Background(), bc.mode.String(), stats.Keys, stats.Locations, nil)

	bc.state.Store(&state{bookText: bookText, index: idx})
	return nil
}

// EncodeOptions control a single Encode call.
type EncodeOptions struct {
	// Tag is the opaque leading field for the DateParagraphLineWord mode
	// (conventionally a date like "2024"). In the LineWordChar mode a
	// non-empty tag is emitted as the decorative page field. Ignored by
	// the other modes.
	Tag string
}

// Encode converts a plaintext message into cipher text. Tokens with no
// occurrence in the book are soft-failures: they appear bracket-escaped in
// the output and in Missing, and OK is false.
func (bc *BookCode) Encode(ctx context.Context, message string, optFns ...func(*EncodeOptions)) (cipher.EncodeResult, error) {
	start := time.Now()

	var opts EncodeOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	tokens := bc.countTokens(message)

	if strings.ContainsRune(opts.Tag, ':') || strings.ContainsFunc(opts.Tag, unicode.IsSpace) {
		err := fmt.Errorf("%w: %q", ErrInvalidTag, opts.Tag)
		bc.metrics.RecordEncode(tokens, 0, time.Since(start), err)
		bc.logger.LogEncode(ctx, tokens, 0, err)
		return cipher.EncodeResult{}, err
	}

	st := bc.state.Load()
	result, err := cipher.Encode(st.index, bc.mode, message, opts.Tag, bc.opts.rng)
	if err != nil {
		err = translateError(err)
		bc.metrics.RecordEncode(tokens, 0, time.Since(start), err)
		bc.logger.LogEncode(ctx, tokens, 0, err)
		return cipher.EncodeResult{}, err
	}

	bc.metrics.RecordEncode(tokens, len(result.Missing), time.Since(start), nil)
	bc.logger.LogEncode(ctx, tokens, len(result.Missing), nil)
	return result, nil
}

// Decode converts cipher text back into plaintext against the current book.
// Unresolvable tokens decode to "?" and are counted in Unresolved; Decode
// itself only fails on an invalid mode.
func (bc *BookCode) Decode(ctx context.Context, cipherText string) (cipher.DecodeResult, error) {
	start := time.Now()
	tokens := len(strings.Fields(cipherText))

	st := bc.state.Load()
	result, err := cipher.Decode(cipherText, st.bookText, bc.mode, bc.opts.policy)
	if err != nil {
		err = translateError(err)
		bc.metrics.RecordDecode(tokens, 0, time.Since(start), err)
		bc.logger.LogDecode(ctx, tokens, 0, err)
		return cipher.DecodeResult{}, err
	}

	bc.metrics.RecordDecode(tokens, result.Unresolved, time.Since(start), nil)
	bc.logger.LogDecode(ctx, tokens, result.Unresolved, nil)
	return result, nil
}

// SaveToWriter writes a snapshot of the book text and settings to w, using
// the configured codec and compression.
func (bc *BookCode) SaveToWriter(ctx context.Context, w io.Writer) error {
	st := bc.state.Load()
	err := snapshot.Write(w, snapshot.Bundle{
		BookText: st.bookText,
		Mode:     bc.mode,
		Policy:   bc.opts.policy,
	}, snapshot.Options{
		Codec:       bc.opts.codec,
		Compression: bc.opts.compression,
	})
	bc.logger.LogSnapshot(ctx, "save", err)
	return err
}

// Mode returns the addressing mode the codec was created with.
func (bc *BookCode) Mode() model.Mode {
	return bc.mode
}

// Policy returns the key normalization policy.
func (bc *BookCode) Policy() normalize.Policy {
	return bc.opts.policy
}

// Book returns the current book text.
func (bc *BookCode) Book() string {
	return bc.state.Load().bookText
}

// Stats returns statistics about the current index.
func (bc *BookCode) Stats() index.Stats {
	return bc.state.Load().index.Stats()
}

// countTokens reports how many units Encode will process: whitespace fields
// in word modes, runes in the character mode.
func (bc *BookCode) countTokens(message string) int {
	if bc.mode.Granularity() == model.CharGranularity {
		return utf8.RuneCountInString(message)
	}
	return len(strings.Fields(message))
}
