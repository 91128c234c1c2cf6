package relq

// Criteria selects the matching strategy.
type Criteria uint8

const (
	// CriteriaLatest picks the single highest version. Takes no key.
	CriteriaLatest Criteria = iota
	// CriteriaEq keeps the versions inside the key's bucket.
	CriteriaEq
	// CriteriaGte keeps the versions at or above the key's bucket.
	CriteriaGte
	// CriteriaLte keeps the versions at or below the key's bucket.
	CriteriaLte

	criteriaInvalid
)

// String returns a stable textual representation for Criteria.
func (c Criteria) String() string {
	switch c {
	case CriteriaLatest:
		return "latest"
	case CriteriaEq:
		return "eq"
	case CriteriaGte:
		return "gte"
	case CriteriaLte:
		return "lte"
	default:
		return "invalid"
	}
}

// ParseCriteria maps free-form tokens to Criteria.
// Supported aliases (case-insensitive):
//
//	latest: "latest","l","newest","head"
//	eq:     "eq","equal","=","=="
//	gte:    "gte",">=","min","from"
//	lte:    "lte","<=","max","to"
//
// Anything else is an *ArgumentError.
func ParseCriteria(s string) (Criteria, error) {
	switch toTok(s) {
	// single highest version
	case "latest", "l", "newest", "head":
		return CriteriaLatest, nil

	// exact bucket match
	case "eq", "equal", "=", "==":
		return CriteriaEq, nil

	// lower bound
	case "gte", ">=", "min", "from":
		return CriteriaGte, nil

	// upper bound
	case "lte", "<=", "max", "to":
		return CriteriaLte, nil

	default:
		return criteriaInvalid, &ArgumentError{Criteria: s, Reason: "unrecognized criteria"}
	}
}

// Options configures a single Match call. Both the options and the input are
// consumed per invocation; nothing persists across calls.
type Options struct {
	// Key is the partial match target: v?MAJOR[.MINOR[.POINT]][-DECORATOR].
	// Required for eq/gte/lte, forbidden for latest.
	Key string

	// Criteria selects the strategy. Zero value is CriteriaLatest.
	Criteria Criteria

	// IncludeDecorated keeps decorated (pre-release) labels in play.
	// Default: dropped before matching.
	IncludeDecorated bool

	// Raw reports each match's original label instead of the normalized
	// MAJOR.MINOR.POINT[-DECORATOR] form.
	Raw bool
}
