package relq

import "fmt"

// TypeError reports a value handed to MatchValues that is not a sequence of
// strings.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("match requires a sequence of strings, got %T", e.Value)
}

// ParseError reports a version label or match key outside the accepted
// grammar. What names the offending input kind ("version" or "key").
type ParseError struct {
	Value string
	What  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q is not in accepted format", e.What, e.Value)
}

// ArgumentError reports a criteria/key combination that makes no sense:
// a missing or surplus key, or an unrecognized criteria.
type ArgumentError struct {
	Criteria string
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("criteria %q: %s", e.Criteria, e.Reason)
}

// SemanticError reports a decorator supplied where it carries no meaning,
// i.e. as a gte/lte bound.
type SemanticError struct {
	Key      string
	Criteria string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("match key %q carries a decorator, which is meaningless for %q", e.Key, e.Criteria)
}
