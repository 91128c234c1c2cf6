package relq

// Match selects labels from in by the configured criteria.
// Simple, readable pipeline:
//  1. validate criteria/key arity
//  2. parse all labels (once), sort ascending
//  3. drop decorated entries unless opted in
//  4. apply the strategy (latest/eq/gte/lte)
//  5. project output (normalized or raw)
//
// The whole call is all-or-nothing: one unparsable label or key fails it,
// nothing is silently skipped. The result is never nil.
func Match(in []string, opt Options) ([]string, error) {
	if opt.Criteria >= criteriaInvalid {
		return nil, &ArgumentError{Criteria: opt.Criteria.String(), Reason: "unrecognized criteria"}
	}

	if opt.Criteria == CriteriaLatest && opt.Key != "" {
		return nil, &ArgumentError{Criteria: CriteriaLatest.String(), Reason: "takes no key"}
	}

	if opt.Criteria != CriteriaLatest && opt.Key == "" {
		return nil, &ArgumentError{Criteria: opt.Criteria.String(), Reason: "requires a key"}
	}

	if len(in) == 0 {
		return []string{}, nil
	}

	vers, err := ParseAll(in)
	if err != nil {
		return nil, err
	}

	if !opt.IncludeDecorated {
		vers = ExcludeDecorated(vers)
	}

	var matched []Version

	switch opt.Criteria {
	case CriteriaLatest:
		matched = matchLatest(vers)

	case CriteriaEq:
		k, err := ParseKey(opt.Key)
		if err != nil {
			return nil, err
		}
		matched = matchEq(vers, k)

	case CriteriaGte:
		k, err := ParseKey(opt.Key)
		if err != nil {
			return nil, err
		}
		if matched, err = matchGte(vers, k); err != nil {
			return nil, err
		}

	case CriteriaLte:
		k, err := ParseKey(opt.Key)
		if err != nil {
			return nil, err
		}
		if matched, err = matchLte(vers, k); err != nil {
			return nil, err
		}
	}

	return project(matched, opt.Raw), nil
}

// MatchValues is the adapter entry point for callers holding an untyped
// sequence, e.g. values decoded from JSON or a template context. Anything
// other than a slice of strings fails with a *TypeError.
func MatchValues(v any, opt Options) ([]string, error) {
	switch in := v.(type) {
	case []string:
		return Match(in, opt)

	case []any:
		labels := make([]string, 0, len(in))
		for _, e := range in {
			s, ok := e.(string)
			if !ok {
				return nil, &TypeError{Value: e}
			}
			labels = append(labels, s)
		}

		return Match(labels, opt)

	default:
		return nil, &TypeError{Value: v}
	}
}

// Latest returns the single highest release label, normalized.
// Decorated labels are excluded; pass Options to Match for other policies.
func Latest(in []string) ([]string, error) {
	return Match(in, Options{Criteria: CriteriaLatest})
}

// Eq returns the labels inside key's bucket ("1" keeps every 1.x.y).
func Eq(in []string, key string) ([]string, error) {
	return Match(in, Options{Criteria: CriteriaEq, Key: key})
}

// Gte returns the labels at or above key's bucket, ascending.
func Gte(in []string, key string) ([]string, error) {
	return Match(in, Options{Criteria: CriteriaGte, Key: key})
}

// Lte returns the labels at or below key's bucket, ascending.
func Lte(in []string, key string) ([]string, error) {
	return Match(in, Options{Criteria: CriteriaLte, Key: key})
}
