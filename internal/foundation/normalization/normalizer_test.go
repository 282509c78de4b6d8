package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type direction string

const (
	up   direction = "up"
	down direction = "down"
)

func newDirections() *Normalizer[direction] {
	return NewNormalizer(map[string]direction{"up": up, "down": down, "Side-Ways": "sideways"}, down)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newDirections()

	tests := []struct {
		name     string
		input    string
		expected direction
	}{
		{"exact", "up", up},
		{"case", "UP", up},
		{"spaces", "  up ", up},
		{"underscore", "side_ways", "sideways"},
		{"unknown falls back", "left", down},
		{"empty falls back", "", down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_Parse(t *testing.T) {
	n := newDirections()

	v, err := n.Parse(" Down ")
	require.NoError(t, err)
	assert.Equal(t, down, v)

	v, err = n.Parse("")
	require.NoError(t, err)
	assert.Equal(t, down, v)

	_, err = n.Parse("left")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "side-ways")
}

func TestNormalizer_ValidKeys(t *testing.T) {
	n := newDirections()
	assert.Equal(t, []string{"down", "side-ways", "up"}, n.ValidKeys())
	assert.True(t, n.Valid("UP"))
	assert.False(t, n.Valid("left"))

	keys := n.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, "down", n.ValidKeys()[0])
}
