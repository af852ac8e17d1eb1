package library

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/emersonbque13/bookcode"
	"github.com/emersonbque13/bookcode/blobstore"
	"github.com/emersonbque13/bookcode/model"
)

var (
	// ErrUnknownBook is returned when no entry exists under the given name.
	ErrUnknownBook = errors.New("library: unknown book")

	// ErrDuplicateBook is returned when an entry name is already taken.
	ErrDuplicateBook = errors.New("library: duplicate book")

	// ErrNotBuilt is returned when the entry exists but BuildAll has not
	// successfully indexed it yet.
	ErrNotBuilt = errors.New("library: book not built")
)

// Entry describes one book in the library.
type Entry struct {
	// Name is the key the codec is retrieved under.
	Name string
	// Source is the blob name of the book text in the store.
	Source string
	// Mode is the addressing mode the book is indexed under.
	Mode model.Mode
	// Options are passed through to bookcode.New.
	Options []bookcode.Option
}

// Options configure a Library.
type Options struct {
	// BuildLimit caps how many books are indexed concurrently.
	// Default: 8.
	BuildLimit int
}

// entry pairs an Entry with its build outcome. The codec is published once,
// after the index is fully built; buildErr is guarded by the library mutex.
type entry struct {
	spec     Entry
	codec    atomic.Pointer[bookcode.BookCode]
	buildErr error
}

// Library is a named collection of book codecs loaded from a BlobStore.
type Library struct {
	store blobstore.BlobStore
	opts  Options

	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates an empty library backed by the given store.
func New(store blobstore.BlobStore, optFns ...func(*Options)) *Library {
	opts := Options{BuildLimit: 8}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.BuildLimit <= 0 {
		opts.BuildLimit = 1
	}
	return &Library{
		store:   store,
		opts:    opts,
		entries: make(map[string]*entry),
	}
}

// Add registers a book. The text is not loaded until BuildAll.
func (l *Library) Add(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownBook)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries[e.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateBook, e.Name)
	}
	l.entries[e.Name] = &entry{spec: e}
	return nil
}

// BuildAll loads and indexes every unbuilt book concurrently. Failures are
// isolated per book: the remaining books still build, and the joined error
// reports each failed entry. Already-built books are skipped, so BuildAll
// can be called again to retry failures.
func (l *Library) BuildAll(ctx context.Context) error {
	l.mu.RLock()
	var pending []*entry
	for _, e := range l.entries {
		if e.codec.Load() == nil {
			pending = append(pending, e)
		}
	}
	l.mu.RUnlock()

	g, gctx := errgroup.WithContext(ctx)
	// Limit concurrency to avoid FD exhaustion or rate limits
	g.SetLimit(l.opts.BuildLimit)

	for _, e := range pending {
		g.Go(func() error {
			bc, err := l.build(gctx, e.spec)

			l.mu.Lock()
			e.buildErr = err
			l.mu.Unlock()

			if err == nil {
				e.codec.Store(bc)
			}
			// Failures are reported in the joined result, not by
			// cancelling sibling builds.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	var errs []error
	for _, e := range pending {
		if e.buildErr != nil {
			errs = append(errs, fmt.Errorf("build %q: %w", e.spec.Name, e.buildErr))
		}
	}
	return errors.Join(errs...)
}

func (l *Library) build(ctx context.Context, spec Entry) (*bookcode.BookCode, error) {
	text, err := blobstore.ReadAll(ctx, l.store, spec.Source)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", spec.Source, err)
	}
	return bookcode.New(string(text), spec.Mode, spec.Options...)
}

// Get returns the codec for the named book.
func (l *Library) Get(name string) (*bookcode.BookCode, error) {
	l.mu.RLock()
	e, ok := l.entries[name]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBook, name)
	}

	if bc := e.codec.Load(); bc != nil {
		return bc, nil
	}

	l.mu.RLock()
	buildErr := e.buildErr
	l.mu.RUnlock()
	if buildErr != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotBuilt, name, buildErr)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotBuilt, name)
}

// Names returns the registered book names, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered books.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
