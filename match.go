package relq

import "sort"

// compareBound compares a version's numeric triple against the key,
// truncated to the fields the key specifies. Unset trailing key fields are
// wildcards, so any version inside the key's bucket compares equal:
// compareBound(1.4.9, "1") == 0 and compareBound(1.1.7, "1.1") == 0.
func compareBound(v Version, k Key) int {
	if v.Major != k.Major {
		if v.Major < k.Major {
			return -1
		}

		return 1
	}

	if !k.HasMinor {
		return 0
	}

	if v.Minor != k.Minor {
		if v.Minor < k.Minor {
			return -1
		}

		return 1
	}

	if !k.HasPoint {
		return 0
	}

	if v.Point != k.Point {
		if v.Point < k.Point {
			return -1
		}

		return 1
	}

	return 0
}

// matchLatest returns the last element of the sorted slice, or nothing.
func matchLatest(sorted []Version) []Version {
	if len(sorted) == 0 {
		return nil
	}

	return sorted[len(sorted)-1:]
}

// matchEq keeps the records inside the key's bucket. A decorator-qualified
// key is a narrow literal case: it matches original labels equal to the key
// text, targeting one specific pre-release tag.
func matchEq(sorted []Version, k Key) []Version {
	if k.Decorator != "" {
		out := make([]Version, 0, 1)
		for _, v := range sorted {
			if v.Original == k.Original {
				out = append(out, v)
			}
		}

		return out
	}

	out := make([]Version, 0, len(sorted))
	for _, v := range sorted {
		if v.Major != k.Major {
			continue
		}

		if k.HasMinor && v.Minor != k.Minor {
			continue
		}

		if k.HasPoint && v.Point != k.Point {
			continue
		}

		out = append(out, v)
	}

	return out
}

// matchGte returns the sorted suffix at or above the key's bucket. The bound
// is found by binary search over the established (major, minor, point)
// ordering; compareBound is monotone over it.
func matchGte(sorted []Version, k Key) ([]Version, error) {
	if k.Decorator != "" {
		return nil, &SemanticError{Key: k.Original, Criteria: CriteriaGte.String()}
	}

	i := sort.Search(len(sorted), func(i int) bool {
		return compareBound(sorted[i], k) >= 0
	})

	return sorted[i:], nil
}

// matchLte returns the sorted prefix at or below the key's bucket. With a
// partial key the whole bucket qualifies: lte "1" keeps 1.99.99, lte "1.1"
// keeps every 1.1.x.
func matchLte(sorted []Version, k Key) ([]Version, error) {
	if k.Decorator != "" {
		return nil, &SemanticError{Key: k.Original, Criteria: CriteriaLte.String()}
	}

	i := sort.Search(len(sorted), func(i int) bool {
		return compareBound(sorted[i], k) > 0
	})

	return sorted[:i], nil
}
