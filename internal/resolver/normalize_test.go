package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_DiacriticAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, "jose", Normalize("José"))
	assert.Equal(t, "jose", Normalize("JOSE"))
	assert.Equal(t, "jose", Normalize("jose"))
	assert.Equal(t, Normalize("José Ramírez"), Normalize("jose ramirez"))
	assert.Equal(t, "nikola jokic", Normalize("Nikola Jokić"))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"José", "D'Andre Swift", "Ja'Marr Chase", "Luka Dončić", ""}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize should be idempotent for %q", in)
	}
}
