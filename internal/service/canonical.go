package service

import (
	"regexp"
	"strings"
)

// storageDescriptors are harmless words droppable without changing what
// the ingredient is.
var storageDescriptors = map[string]bool{
	"frozen": true,
	"fresh":  true,
	"loose":  true,
	"leaf":   true,
	"bottle": true,
	"spice":  true,
}

var (
	apostropheRe = regexp.MustCompile("[’`]")
	punctRe      = regexp.MustCompile(`[^a-z0-9\s\-']`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// NormalizeSafe lowercases, strips punctuation, drops standalone storage
// descriptors and applies a conservative plural strip.
func NormalizeSafe(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = apostropheRe.ReplaceAllString(s, "'")
	s = punctRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if !storageDescriptors[w] {
			kept = append(kept, w)
		}
	}
	s = strings.Join(kept, " ")

	// Cheap singularization; deliberately conservative.
	switch {
	case strings.HasSuffix(s, "es") && len(s) > 3:
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "s") && len(s) > 2 && !strings.HasSuffix(s, "ss"):
		s = s[:len(s)-1]
	}
	return s
}

// synonyms maps only true equivalents. No brand-to-generic collapsing.
var synonyms = map[string]string{
	"scallion":      "green onion",
	"green onions":  "green onion",
	"garbanzo bean": "chickpea",
	"garbanzo":      "chickpea",
	"chickpeas":     "chickpea",
}

// Canonicalize normalizes a pantry or ingredient token and folds strict
// synonyms onto one spelling.
func Canonicalize(token string) string {
	t := NormalizeSafe(token)
	if canonical, ok := synonyms[t]; ok {
		return canonical
	}
	return t
}
