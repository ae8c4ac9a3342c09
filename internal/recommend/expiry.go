package recommend

import "time"

// Expiry windows. Items inside the urgent window count fully; items in
// the soon window count half; everything else contributes nothing.
const (
	urgentWindowDays = 7
	soonWindowDays   = 14

	urgentWeight = 1.0
	soonWeight   = 0.5
)

var expirationLayouts = []string{"2006-01-02", time.RFC3339}

// parseExpiration parses a pantry expiration string. Malformed values are
// reported as not-ok and otherwise ignored.
func parseExpiration(raw string) (time.Time, bool) {
	for _, layout := range expirationLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type expiringItem struct {
	name   string
	weight float64
}

// ScoreExpiry computes the urgency-weighted fraction of recipe
// ingredients that map onto soon-to-expire pantry items, in [0, 1], plus
// the matched pantry item names. Each recipe ingredient counts at most
// once, against the first pantry item it matches in input order, so the
// matched list can repeat a pantry name across ingredients; callers
// dedupe for display.
func ScoreExpiry(ingredients []string, pantry []PantryItem, today time.Time) (float64, []string) {
	matched := []string{}
	if len(ingredients) == 0 {
		return 0, matched
	}

	today = today.Truncate(24 * time.Hour)

	var expiring []expiringItem
	seen := make(map[string]int)
	for _, item := range pantry {
		exp, ok := parseExpiration(item.Expiration)
		if !ok {
			continue
		}
		days := int(exp.Truncate(24*time.Hour).Sub(today).Hours() / 24)

		var weight float64
		switch {
		case days >= 0 && days <= urgentWindowDays:
			weight = urgentWeight
		case days > urgentWindowDays && days <= soonWindowDays:
			weight = soonWeight
		default:
			continue
		}

		name := normalizeName(item.Name)
		if i, ok := seen[name]; ok {
			// Duplicate pantry name: latest date wins, position stays.
			expiring[i].weight = weight
			continue
		}
		seen[name] = len(expiring)
		expiring = append(expiring, expiringItem{name: name, weight: weight})
	}

	total := 0.0
	for _, ing := range ingredients {
		for _, item := range expiring {
			if Matches(item.name, ing) {
				total += item.weight
				matched = append(matched, item.name)
				break
			}
		}
	}

	score := total / float64(len(ingredients))
	if score > 1.0 {
		score = 1.0
	}
	return score, matched
}
