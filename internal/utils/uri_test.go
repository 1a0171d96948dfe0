package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"digits only", "1234567890123456", "1234567890123456"},
		{"letters and unreserved marks", "AbC-_.!~*'()", "AbC-_.!~*'()"},
		{"space", "12 34", "12%2034"},
		{"ampersand and equals", "a&b=c", "a%26b%3Dc"},
		{"slash and question mark", "a/b?c", "a%2Fb%3Fc"},
		{"plus and hash", "1+1#x", "1%2B1%23x"},
		{"percent", "100%", "100%25"},
		{"sub-delimiters", "$,;:@", "%24%2C%3B%3A%40"},
		{"non-ascii", "ü€", "%C3%BC%E2%82%AC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeURIComponent(tt.input))
		})
	}
}

// TestEncodeURIComponent_RoundTrip verifies that decoding the encoded value
// yields the original for inputs with characters that must be escaped.
func TestEncodeURIComponent_RoundTrip(t *testing.T) {
	inputs := []string{
		"card 0001",
		"a&b&c",
		"x/y/z",
		"50%/50%",
		"?query=1&other=2",
		"ключ",
		"tab\tnewline\n",
	}

	for _, in := range inputs {
		encoded := EncodeURIComponent(in)

		decoded, err := url.PathUnescape(encoded)
		require.NoError(t, err)
		assert.Equal(t, in, decoded)

		for i := 0; i < len(encoded); i++ {
			c := encoded[i]
			assert.True(t, c == '%' || isURIUnreserved(c), "unexpected raw byte %q in %q", c, encoded)
		}
	}
}
