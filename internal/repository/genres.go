package repository

import "strings"

// Genres are persisted as a single comma-separated TEXT column.  The
// encoding preserves order and round-trips every non-empty genre name;
// genre names themselves never contain commas (they come from a fixed
// choice list at the HTTP boundary).

// encodeGenres joins a genre list into its column representation.
// A nil or empty list encodes to the empty string.
func encodeGenres(genres []string) string {
	clean := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g != "" {
			clean = append(clean, g)
		}
	}
	return strings.Join(clean, ",")
}

// decodeGenres splits a column value back into a genre list.  The
// result is never nil so that persisted entities always carry a
// non-nil genre slice.
func decodeGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
