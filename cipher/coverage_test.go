package cipher

import (
	"math/rand"
	"testing"

	"github.com/emersonbque13/bookcode/index"
	"github.com/emersonbque13/bookcode/model"
	"github.com/emersonbque13/bookcode/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverage_SinglePick(t *testing.T) {
	idx := index.Build("gato muro", model.LineWord, normalize.New(normalize.PolicyStrict))

	res, err := Encode(idx, model.LineWord, "gato", "", nil)
	require.NoError(t, err)

	cov := res.Coverage
	assert.Equal(t, 1, cov.Picks())
	assert.Equal(t, 1, cov.Distinct())
	assert.Equal(t, 2, cov.PoolSize())
	assert.Zero(t, cov.ReuseRatio())
}

func TestCoverage_ReuseOnRepeats(t *testing.T) {
	// A single candidate forces every repeat onto the same location.
	idx := index.Build("gato", model.LineWord, normalize.New(normalize.PolicyStrict))

	res, err := Encode(idx, model.LineWord, "gato gato gato gato", "", rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	cov := res.Coverage
	assert.Equal(t, 4, cov.Picks())
	assert.Equal(t, 1, cov.Distinct())
	assert.InDelta(t, 0.75, cov.ReuseRatio(), 1e-9)
	assert.True(t, cov.Used(0))
	assert.False(t, cov.Used(1))
}

func TestCoverage_MissingTokensNotCounted(t *testing.T) {
	idx := index.Build("gato", model.LineWord, normalize.New(normalize.PolicyStrict))

	res, err := Encode(idx, model.LineWord, "ausente", "", nil)
	require.NoError(t, err)
	assert.Zero(t, res.Coverage.Picks())
	assert.Zero(t, res.Coverage.Distinct())
}
