package catalog

import (
	"strings"
)

// SplitTokens turns a comma/slash separated free-text field into lowercased,
// whitespace-trimmed tokens. Empty tokens are dropped. Both the classifier and
// the extractor tokenize through this single function.
func SplitTokens(s string) []string {
	s = strings.ReplaceAll(s, "/", ",")
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// splitLocations splits a multi-valued location field. Location values are
// canonical names, so no lowercasing here.
func splitLocations(s string) []string {
	parts := strings.Split(s, ",")
	locations := make([]string, 0, len(parts))
	for _, part := range parts {
		location := strings.TrimSpace(part)
		if location == "" {
			continue
		}
		locations = append(locations, location)
	}
	return locations
}
