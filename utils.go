package relq

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// project maps matched records to output strings: original labels when raw,
// otherwise the normalized form. Always returns a non-nil slice.
func project(in []Version, raw bool) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if raw {
			out = append(out, v.Original)
		} else {
			out = append(out, v.Normalized)
		}
	}

	return out
}
