package catalog

import (
	"strings"
)

// FallbackCategory is returned whenever no rule matches.
const FallbackCategory = "Autres"

type (
	// MainCategory is one bucket of the taxonomy with the keywords
	// (sub-category names, synonyms) that map onto it.
	MainCategory struct {
		Name     string
		Keywords []string
	}

	// Taxonomy is an ordered rule table. A slice rather than a map because
	// classification is first-match-wins in configuration order.
	Taxonomy []MainCategory
)

// Classify maps a free-text category string to exactly one main category.
// Matching is substring based and case-insensitive. Main-category names are
// tried before any keyword so an exact category name cannot be shadowed by a
// broader keyword list of an earlier bucket.
func Classify(category string, rules Taxonomy) string {
	if category == "" {
		return FallbackCategory
	}

	lower := strings.ToLower(category)

	for _, mainCat := range rules {
		if strings.Contains(lower, strings.ToLower(mainCat.Name)) {
			return mainCat.Name
		}
	}

	for _, mainCat := range rules {
		for _, keyword := range mainCat.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return mainCat.Name
			}
		}
	}

	return FallbackCategory
}

// BucketNames returns the bucket names of a taxonomy in rule order, with the
// fallback bucket appended when the taxonomy does not already declare it.
func BucketNames(rules Taxonomy) []string {
	names := make([]string, 0, len(rules)+1)
	hasFallback := false
	for _, mainCat := range rules {
		if mainCat.Name == FallbackCategory {
			hasFallback = true
		}
		names = append(names, mainCat.Name)
	}
	if !hasFallback {
		names = append(names, FallbackCategory)
	}
	return names
}
