// Package location provides the URL slug codec for (city, state) pairs and
// the canonical region list the decoder validates against.
package location

import (
	"strings"
	"unicode"
)

// whitespaceToHyphen lowercases s and collapses every run of whitespace into
// a single hyphen.
func whitespaceToHyphen(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// EncodeSlug converts a (city, state) pair into a URL-safe slug of the form
// "<city>-<state>". Returns "" if either input is empty. Hyphens already
// present in names are not escaped, so multi-word values are not guaranteed
// to round-trip; see DecodeSlug.
func EncodeSlug(city, state string) string {
	if strings.TrimSpace(city) == "" || strings.TrimSpace(state) == "" {
		return ""
	}
	return whitespaceToHyphen(city) + "-" + whitespaceToHyphen(state)
}

// Decoded is the result of decoding a location slug. City and State are the
// canonical names from the region index when Valid is true, empty otherwise.
type Decoded struct {
	City  string
	State string
	Valid bool
}

// titleCase uppercases the first rune of each hyphenless word.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// DecodeSlug parses a slug produced by EncodeSlug and validates it against
// the region index. The first hyphen-separated segment is the city candidate;
// the remaining segments, space-joined, are the state candidate. The state is
// resolved case-insensitively against the canonical list, then the city
// against that state's cities. Any failure yields a zero Decoded with
// Valid false.
//
// Limitation carried from the encoding: a hyphen inside a city name shifts
// segments into the state candidate, so multi-word cities ("New Delhi")
// decode ambiguously and fail validation.
func DecodeSlug(slug string, regions *RegionIndex) Decoded {
	if slug == "" {
		return Decoded{}
	}
	parts := strings.Split(slug, "-")
	if len(parts) < 2 {
		return Decoded{}
	}
	cityCandidate := titleCase(parts[0])
	stateWords := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		stateWords = append(stateWords, titleCase(p))
	}
	stateCandidate := strings.Join(stateWords, " ")

	state, ok := regions.StateByName(stateCandidate)
	if !ok {
		return Decoded{}
	}
	city, ok := regions.CityInState(state, cityCandidate)
	if !ok {
		return Decoded{}
	}
	return Decoded{City: city, State: state, Valid: true}
}
