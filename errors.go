package bookcode

import (
	"errors"
	"fmt"

	"github.com/emersonbque13/bookcode/cipher"
)

var (
	// ErrEmptyBook is returned when the book text contains no words.
	ErrEmptyBook = errors.New("book text contains no words")

	// ErrInvalidTag is returned when a date tag would corrupt the
	// coordinate grammar (contains ':' or whitespace).
	ErrInvalidTag = errors.New("tag must not contain ':' or whitespace")

	// ErrModeMismatch is returned when encoding against an index built
	// under a different addressing mode.
	ErrModeMismatch = errors.New("mode mismatch")

	// ErrInvalidMode is returned when an unknown addressing mode is used.
	ErrInvalidMode = errors.New("invalid mode")
)

// ErrInvalidSnapshot indicates a snapshot that could not be restored.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSnapshot struct {
	cause error
}

func (e *ErrInvalidSnapshot) Error() string {
	return fmt.Sprintf("invalid snapshot: %v", e.cause)
}

func (e *ErrInvalidSnapshot) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, cipher.ErrModeMismatch) {
		return fmt.Errorf("%w: %w", ErrModeMismatch, err)
	}
	if errors.Is(err, cipher.ErrInvalidMode) {
		return fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}

	return err
}
