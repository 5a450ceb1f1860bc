package atom

import (
	"strings"
)

// MaskKey masks an API key for logging, showing only the last 4 characters
func MaskKey(key string) string {
	if len(key) <= 4 {
		return key
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// NormalizeID trims whitespace around an element id
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

// IDSet builds a membership set from a list of ids, ignoring blanks
func IDSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = NormalizeID(id)
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}
