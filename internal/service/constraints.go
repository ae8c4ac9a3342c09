package service

import (
	"regexp"
	"strings"

	"github.com/kitchenpal/backend/internal/recommend"
)

// PrioritizeExpiring is the sentinel value stored in
// Constraints.PrioritizeIngredient when the user asks to use things up.
const PrioritizeExpiring = "expiring"

var (
	includePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:use|include|want|need)\s+([a-z0-9,\s&\-]+?)(?:\s+(?:and|or|please|recipe|to make|with)|\?|$)`),
		regexp.MustCompile(`(?:make with|recipe with|what\s+can\s+i\s+make\s+with)\s+([a-z0-9,\s&\-]+?)(?:\s+(?:and|or|please|no|don't|exclude|without|allergic|dislike)|\?|$)`),
	}
	withPattern    = regexp.MustCompile(`(?:^|\s)with\s+([a-z0-9,\s&\-]+?)(?:\s+(?:and|or|please|no|don't|exclude|without|allergic|dislike)|\?|$)`)
	excludePattern = regexp.MustCompile(`(?:no|don't use|dont use|can't have|cannot have|allergic to|dislike|exclude|without)\s+([a-z0-9,\s&\-]+?)(?:,|\s+and\s+(?:no|don't|allergic|exclude|dislike|without)|\s*(?:make|recipe|with|use)|\?|$)`)

	listSplitRe      = regexp.MustCompile(`,|\s+and\s+|\s+or\s+|\s+with\s+`)
	itemListSplitRe  = regexp.MustCompile(`,|\s+and\s+|\s+or\s+`)
	expiringWindowRe = regexp.MustCompile(`expiring\s+in\s+(\d+)\s+days?`)
)

var includeStopwords = map[string]bool{
	"something": true, "everything": true, "make": true, "a": true, "an": true,
}

// ParseConstraints extracts structured constraints from a free-text chat
// message with keyword and pattern matching. It errs toward leaving a
// field unset rather than guessing.
func ParseConstraints(message string) recommend.Constraints {
	lower := strings.ToLower(message)
	var c recommend.Constraints

	// Time limits. "quick"/"fast" outrank the explicit-minute phrasings.
	switch {
	case strings.Contains(lower, "quick") || strings.Contains(lower, "fast"):
		c.MaxTimeMinutes = intPointer(20)
	case strings.Contains(lower, "under 30") || strings.Contains(lower, "30 minutes"):
		c.MaxTimeMinutes = intPointer(30)
	case strings.Contains(lower, "under 20") || strings.Contains(lower, "20 minutes"):
		c.MaxTimeMinutes = intPointer(20)
	}

	switch {
	case strings.Contains(lower, "vegan"):
		c.DietTypes = []string{"vegan"}
	case strings.Contains(lower, "vegetarian"):
		c.DietTypes = []string{"vegetarian"}
	case strings.Contains(lower, "pescatarian"):
		c.DietTypes = []string{"pescatarian"}
	}

	// Protein wishes double as an ingredient preference list.
	if strings.Contains(lower, "protein") {
		c.IncludeIngredients = []string{"protein", "chicken", "fish", "beef", "tofu", "beans", "eggs"}
		c.PrioritizeIngredient = "protein"
	}

	if strings.Contains(lower, "high carb") || strings.Contains(lower, "high-carbs") || strings.Contains(lower, "high carbs") {
		c.PrioritizeMacro = "high_carb"
	}
	if strings.Contains(lower, "low carb") || strings.Contains(lower, "low-carb") || strings.Contains(lower, "low carbs") {
		c.PrioritizeMacro = recommend.GoalLowCarb
	}

	if strings.Contains(lower, "light") || strings.Contains(lower, "healthy") {
		c.ExcludeIngredients = []string{"cream", "butter", "oil"}
	}

	if strings.Contains(lower, "keto") {
		c.DietTypes = []string{"keto"}
	}

	if strings.Contains(lower, "gluten") {
		c.ExcludeIngredients = append(c.ExcludeIngredients, "gluten", "wheat", "bread")
	}

	if strings.Contains(lower, "expiring") || strings.Contains(lower, "use soon") || strings.Contains(lower, "use up") {
		c.PrioritizeIngredient = PrioritizeExpiring
	}

	for _, pattern := range includePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			c.IncludeIngredients = append(c.IncludeIngredients, splitItems(m[1], listSplitRe, includeStopwords)...)
		}
	}
	for _, m := range withPattern.FindAllStringSubmatch(lower, -1) {
		parts := splitItems(m[1], itemListSplitRe, map[string]bool{"something": true, "everything": true})
		c.IncludeIngredients = append(c.IncludeIngredients, parts...)
	}

	for _, m := range excludePattern.FindAllStringSubmatch(lower, -1) {
		c.ExcludeIngredients = append(c.ExcludeIngredients, splitItems(m[1], itemListSplitRe, nil)...)
	}

	c.IncludeIngredients = dedupe(c.IncludeIngredients)
	c.ExcludeIngredients = dedupe(c.ExcludeIngredients)
	return c
}

// ExpiringWindowDays reads an explicit "expiring in N days" window from
// the message, defaulting to 3.
func ExpiringWindowDays(message string) int {
	if m := expiringWindowRe.FindStringSubmatch(strings.ToLower(message)); m != nil {
		days := 0
		for _, r := range m[1] {
			days = days*10 + int(r-'0')
		}
		if days > 0 {
			return days
		}
	}
	return 3
}

func splitItems(raw string, splitter *regexp.Regexp, stopwords map[string]bool) []string {
	var out []string
	for _, part := range splitter.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if len(part) <= 1 || stopwords[part] {
			continue
		}
		out = append(out, part)
	}
	return out
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func intPointer(v int) *int { return &v }
