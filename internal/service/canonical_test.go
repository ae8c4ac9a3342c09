package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSafe(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"should lowercase and trim", "  Chicken Breast ", "chicken breast"},
		{"should strip punctuation", "tomato (diced)", "tomato diced"},
		{"should drop storage descriptors", "frozen peas", "pea"},
		{"should drop multiple descriptors", "fresh loose spinach", "spinach"},
		{"should singularize a regular plural", "eggs", "egg"},
		{"should singularize an es plural", "tomatoes", "tomato"},
		{"should leave double-s words alone", "swiss", "swiss"},
		{"should leave short words alone", "as", "as"},
		{"should collapse internal whitespace", "olive   oil", "olive oil"},
		{"should keep hyphenated names", "half-and-half", "half-and-half"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSafe(tt.input))
		})
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"should fold scallions onto green onion", "Scallions", "green onion"},
		{"should fold garbanzo beans onto chickpea", "garbanzo beans", "chickpea"},
		{"should fold garbanzo onto chickpea", "garbanzo", "chickpea"},
		{"should singularize chickpeas", "chickpeas", "chickpea"},
		{"should pass unknown tokens through normalized", "Red Onions", "red onion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Canonicalize(tt.input))
		})
	}
}
