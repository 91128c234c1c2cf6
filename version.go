package relq

import (
	"sort"
	"strconv"
)

// Version is a parsed version label. Immutable once created.
type Version struct {
	// Original is the exact input label, unmodified.
	Original string

	// Normalized is the canonical MAJOR.MINOR.POINT[-DECORATOR] form:
	// free-text prefix and leading 'v' stripped. It always parses back to
	// the same (major, minor, point, decorator) tuple.
	Normalized string

	// Decorator is the pre-release suffix without the leading '-',
	// empty when absent.
	Decorator string

	Major int
	Minor int
	Point int
}

// Decorated reports whether the label carries a pre-release suffix.
func (v Version) Decorated() bool {
	return v.Decorator != ""
}

// canonical builds the normalized form from the parsed fields.
func (v Version) canonical() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Point)
	if v.Decorator != "" {
		s += "-" + v.Decorator
	}

	return s
}

// Parse converts a free-form label into a Version.
// Returns *ParseError when no suffix of label matches the version pattern.
func Parse(label string) (Version, error) {
	m := versionRe.FindStringSubmatch(label)
	if m == nil {
		return Version{}, &ParseError{Value: label, What: "version"}
	}

	maj, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, &ParseError{Value: label, What: "version"}
	}

	min, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, &ParseError{Value: label, What: "version"}
	}

	pt, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, &ParseError{Value: label, What: "version"}
	}

	v := Version{
		Original:  label,
		Decorator: m[4],
		Major:     maj,
		Minor:     min,
		Point:     pt,
	}
	v.Normalized = v.canonical()

	return v, nil
}

// ParseAll parses every label and returns the records sorted ascending by
// (major, minor, point). The call is all-or-nothing: one unparsable label
// fails the whole batch.
func ParseAll(labels []string) ([]Version, error) {
	out := make([]Version, 0, len(labels))
	for _, l := range labels {
		v, err := Parse(l)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	sortVersions(out)

	return out, nil
}

// sortVersions orders ascending by (major, minor, point). The decorator is
// not a sort key; records with equal triples keep their input order.
func sortVersions(in []Version) {
	if len(in) < 2 {
		return
	}

	sort.SliceStable(in, func(i, j int) bool {
		a, b := in[i], in[j]
		if a.Major != b.Major {
			return a.Major < b.Major
		}

		if a.Minor != b.Minor {
			return a.Minor < b.Minor
		}

		return a.Point < b.Point
	})
}

// ExcludeDecorated drops every decorated (pre-release) record, preserving
// order.
func ExcludeDecorated(in []Version) []Version {
	out := make([]Version, 0, len(in))
	for _, v := range in {
		if v.Decorated() {
			continue
		}

		out = append(out, v)
	}

	return out
}
