package cipher

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Coverage audits homophone selection across one encode call: which index
// locations were actually used, and how often picks repeated. A high reuse
// ratio on a long message means the same coordinates recur in the cipher
// text, defeating the point of homophonic substitution; usually a sign the
// book is too short for the message.
type Coverage struct {
	used  *roaring.Bitmap
	picks int
	pool  int
}

func newCoverage(pool int) *Coverage {
	return &Coverage{used: roaring.New(), pool: pool}
}

func (c *Coverage) record(ordinal uint32) {
	c.used.Add(ordinal)
	c.picks++
}

// Picks returns how many tokens were encoded via index lookup.
func (c *Coverage) Picks() int {
	return c.picks
}

// Distinct returns how many distinct index locations were used.
func (c *Coverage) Distinct() int {
	return int(c.used.GetCardinality())
}

// PoolSize returns the total number of locations the index offered.
func (c *Coverage) PoolSize() int {
	return c.pool
}

// Used reports whether the location with the given ordinal was selected.
func (c *Coverage) Used(ordinal uint32) bool {
	return c.used.Contains(ordinal)
}

// ReuseRatio returns the fraction of picks that repeated an already-used
// location, in [0, 1]. Zero picks yield zero.
func (c *Coverage) ReuseRatio() float64 {
	if c.picks == 0 {
		return 0
	}
	return 1 - float64(c.Distinct())/float64(c.picks)
}
