package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"normal sentence", "this is a test of the make_unigram method", []string{"this", "is", "a", "test", "of", "the", "make_unigram", "method"}},
		{"empty", "", []string{}},
		{"blank", " \t\n ", []string{}},
		{"single word", "word", []string{"word"}},
		{"mixed case kept", "ThIs Is A TeSt", []string{"ThIs", "Is", "A", "TeSt"}},
		{"numbers", "numbers 123 and letters", []string{"numbers", "123", "and", "letters"}},
		{"symbols stay inside tokens", "special %& chars", []string{"special", "%&", "chars"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCl100k(t *testing.T) {
	codec, err := Cl100k()
	require.NoError(t, err)

	again, err := Cl100k()
	require.NoError(t, err)
	assert.Equal(t, codec, again)

	ids, _, err := codec.Encode("The quick brown fox jumps over the lazy dog.")
	require.NoError(t, err)
	assert.Greater(t, len(ids), 5)
	assert.Less(t, len(ids), 20)
}
