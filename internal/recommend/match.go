package recommend

import "strings"

// normalizeName lowercases and trims an ingredient name for matching.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Matches reports whether two ingredient names refer to the same item:
// true when either normalized name is a substring of the other.
//
// Known limitation: unrelated substrings also match ("pea" matches
// "peanut butter"). That behavior is load-bearing for exclusion filters
// built on top of this function, so don't tighten it here without
// revisiting every caller.
func Matches(a, b string) bool {
	a, b = normalizeName(a), normalizeName(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// ContainsAll reports whether every required name matches at least one
// recipe ingredient. An empty required list is trivially satisfied.
func ContainsAll(ingredients, required []string) bool {
	for _, req := range required {
		found := false
		for _, ing := range ingredients {
			if Matches(req, ing) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ContainsAny reports whether any excluded name matches any recipe
// ingredient.
func ContainsAny(ingredients, excluded []string) bool {
	for _, ing := range ingredients {
		for _, exc := range excluded {
			if Matches(exc, ing) {
				return true
			}
		}
	}
	return false
}
