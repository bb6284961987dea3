package catalog

import (
	"strings"
)

type (
	// LocationRule maps a keyword found in product categories to candidate
	// storage locations, preferred first.
	LocationRule struct {
		Keyword   string
		Locations []string
	}

	// TagRule maps a keyword to a human-readable diet or allergen tag.
	TagRule struct {
		Keyword string
		Tag     string
	}

	// KeywordTables holds the ordered rule tables the extractor scans.
	KeywordTables struct {
		Locations []LocationRule
		Diets     []TagRule
		Allergens []TagRule
	}

	// ProductInfo is the derived result of an extraction. Created fresh on
	// every call, never persisted as such.
	ProductInfo struct {
		Location  string
		DietInfo  []string
		Allergens []string
	}
)

// ExtractProductInfo derives a storage location suggestion plus diet and
// allergen tags from the free-text categories and labels of a product lookup,
// using the default French tables.
func ExtractProductInfo(categories, labels string) ProductInfo {
	return Extract(categories, labels, DefaultTables)
}

// Extract is ExtractProductInfo with caller-supplied rule tables.
//
// The location comes from categories only: the first token with a keyword hit
// decides it and later tokens do not override. Diet and allergen tags are
// collected from every token of both inputs, deduplicated by exact string
// equality, first-seen order preserved. Absent inputs yield the all-default
// result.
func Extract(categories, labels string, tables KeywordTables) ProductInfo {
	info := ProductInfo{
		Location:  DefaultLocation,
		DietInfo:  []string{},
		Allergens: []string{},
	}

	if categories != "" {
		tokens := SplitTokens(categories)

	locationScan:
		for _, token := range tokens {
			for _, rule := range tables.Locations {
				if strings.Contains(token, strings.ToLower(rule.Keyword)) {
					if len(rule.Locations) > 0 {
						info.Location = rule.Locations[0]
					}
					break locationScan
				}
			}
		}

		for _, token := range tokens {
			info.DietInfo = appendTags(info.DietInfo, token, tables.Diets)
			info.Allergens = appendAllergens(info.Allergens, token, tables.Allergens)
		}
	}

	if labels != "" {
		for _, token := range SplitTokens(labels) {
			info.DietInfo = appendTags(info.DietInfo, token, tables.Diets)
			info.Allergens = appendAllergens(info.Allergens, token, tables.Allergens)
		}
	}

	return info
}

func appendTags(tags []string, token string, rules []TagRule) []string {
	for _, rule := range rules {
		if strings.Contains(token, strings.ToLower(rule.Keyword)) {
			tags = appendIfAbsent(tags, rule.Tag)
		}
	}
	return tags
}

// appendAllergens is appendTags with a negation guard: "sans gluten" names a
// diet, not a gluten warning.
func appendAllergens(tags []string, token string, rules []TagRule) []string {
	for _, rule := range rules {
		keyword := strings.ToLower(rule.Keyword)
		if strings.Contains(token, keyword) && !strings.Contains(token, "sans "+keyword) {
			tags = appendIfAbsent(tags, rule.Tag)
		}
	}
	return tags
}

func appendIfAbsent(tags []string, tag string) []string {
	for _, existing := range tags {
		if existing == tag {
			return tags
		}
	}
	return append(tags, tag)
}
