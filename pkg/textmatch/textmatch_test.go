package textmatch_test

import (
	"testing"

	"go-volink-backend/pkg/textmatch"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"comma separated", "Python, JavaScript, Teaching", []string{"python", "javascript", "teaching"}},
		{"extra whitespace", "  Cooking ,  First Aid  ", []string{"cooking", "first aid"}},
		{"single entry", "Gardening", []string{"gardening"}},
		{"trailing comma kept", "a,b,", []string{"a", "b", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textmatch.Tokenize(tt.in))
		})
	}
}

func TestContainsToken(t *testing.T) {
	tokens := textmatch.Tokenize("Python, Teaching")
	assert.True(t, textmatch.ContainsToken(tokens, "python"))
	assert.False(t, textmatch.ContainsToken(tokens, "java"))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, textmatch.ContainsAny("Education, Technology", []string{"teaching", "education"}))
	assert.False(t, textmatch.ContainsAny("Sports", []string{"teaching", "education"}))
}
