package relq

import "strconv"

// Key is a partial match target. Major is always present; Minor and Point
// narrow the match only when their Has* flag is set, otherwise the field is
// a wildcard at that level. A decorator is meaningful only for eq.
type Key struct {
	// Original is the exact key text as supplied by the caller.
	Original string

	// Decorator is the pre-release suffix without the leading '-',
	// empty when absent.
	Decorator string

	Major int
	Minor int
	Point int

	HasMinor bool
	HasPoint bool
}

// ParseKey converts key text into a Key. The whole string must match
// v?MAJOR[.MINOR[.POINT]][-DECORATOR]; anything else is a *ParseError.
func ParseKey(text string) (Key, error) {
	m := keyRe.FindStringSubmatch(text)
	if m == nil {
		return Key{}, &ParseError{Value: text, What: "key"}
	}

	k := Key{Original: text, Decorator: m[4]}

	var err error
	if k.Major, err = strconv.Atoi(m[1]); err != nil {
		return Key{}, &ParseError{Value: text, What: "key"}
	}

	if m[2] != "" {
		if k.Minor, err = strconv.Atoi(m[2]); err != nil {
			return Key{}, &ParseError{Value: text, What: "key"}
		}
		k.HasMinor = true
	}

	if m[3] != "" {
		if k.Point, err = strconv.Atoi(m[3]); err != nil {
			return Key{}, &ParseError{Value: text, What: "key"}
		}
		k.HasPoint = true
	}

	return k, nil
}
