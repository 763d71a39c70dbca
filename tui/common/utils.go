package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHashtags splits comma-separated input into hashtags. Surrounding
// spaces and a leading '#' are dropped, empty entries skipped, and
// duplicates kept.
func ParseHashtags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimPrefix(strings.TrimSpace(part), "#")
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseInt parses a required integer field. Blank input yields 0, which the
// feed service treats as missing.
func ParseInt(label, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", label, raw)
	}
	return v, nil
}

// ParseOptionalInt parses an optional integer filter. Blank input yields nil.
func ParseOptionalInt(label, raw string) (*int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := ParseInt(label, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalString returns nil for blank input.
func OptionalString(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return &raw
}
