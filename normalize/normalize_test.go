package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Strict(t *testing.T) {
	n := New(PolicyStrict)

	tests := []struct {
		raw  string
		want string
	}{
		{"Gato", "gato"},
		{"gato.", "gato"},
		{"Vovó!", "vovó"},
		{"CÃO", "cão"},
		{"dia-a-dia", "diaadia"},
		{"x123", "x123"},
		{"under_score", "under_score"},
		{"!?...", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Key(tt.raw), "raw=%q", tt.raw)
	}
}

func TestKey_FoldAccents(t *testing.T) {
	n := New(PolicyFoldAccents)

	tests := []struct {
		raw  string
		want string
	}{
		{"Vovó!", "vovo"},
		{"vovo", "vovo"},
		{"CÃO", "cao"},
		{"café", "cafe"},
		{"über", "uber"},
		{"!?...", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Key(tt.raw), "raw=%q", tt.raw)
	}
}

func TestKey_PoliciesDiverge(t *testing.T) {
	strict := New(PolicyStrict)
	fold := New(PolicyFoldAccents)

	// Accent-insensitive keying makes the accented and plain spellings meet;
	// strict keying keeps them apart.
	assert.Equal(t, fold.Key("vovo"), fold.Key("Vovó!"))
	assert.NotEqual(t, strict.Key("vovo"), strict.Key("Vovó!"))
}

func TestKey_Deterministic(t *testing.T) {
	for _, p := range []Policy{PolicyStrict, PolicyFoldAccents} {
		n := New(p)
		for _, raw := range []string{"Vovó!", "gato", "", "123", "Ação?"} {
			assert.Equal(t, n.Key(raw), n.Key(raw), "policy=%s raw=%q", p, raw)
		}
	}
}

func TestTrimEdges(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"muro.", "muro"},
		{"\"gato!\"", "gato"},
		{"cão,", "cão"},
		{"dia-a-dia", "dia-a-dia"},
		{"...", ""},
		{"Vovó", "Vovó"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TrimEdges(tt.raw), "raw=%q", tt.raw)
	}
}
