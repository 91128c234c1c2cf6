/*
Package relq selects version labels (release tags) out of an unordered list
according to a small query language: latest, eq, gte, lte.

The package is network-agnostic: it operates purely on a slice of label
strings. Typical flow:

 1. Fetch raw release names elsewhere (e.g., via github.Client.Releases).
 2. Call Match with the desired Options (criteria, key, decorator policy).
 3. Use the resulting list.

Version notes:
  - A label is any string that ends in MAJOR.MINOR.POINT[-DECORATOR],
    optionally preceded by a "v"/"V" and arbitrary free text
    ("Foo Boo v1.2.3" parses as 1.2.3).
  - The decorator is a pre-release suffix ("alpha", "rc.1"). Decorated labels
    are dropped before matching unless Options.IncludeDecorated is set.
  - Sorting is ascending by (major, minor, point); the decorator never takes
    part in ordering.
  - Output is the normalized MAJOR.MINOR.POINT[-DECORATOR] form by default;
    set Options.Raw to get the original labels back.

Match keys are partial: "1" targets every 1.x.y, "1.2" every 1.2.x, "1.2.3"
exactly that triple. Unset trailing fields act as wildcards, so Lte("1")
includes 1.99.99. A decorator-qualified key ("1.2.3-rc.1") is meaningful only
for eq, where it matches the literal original label.

Usage example:

	labels := []string{"v0.1.0", "v2.0.0", "v1.0.0", "v1.1.2", "v3.0.0-alpha"}

	out, err := relq.Match(labels, relq.Options{
		Criteria: relq.CriteriaLte,
		Key:      "1",
	})
	if err != nil {
		// *relq.ParseError, *relq.ArgumentError or *relq.SemanticError
	}

	fmt.Println(out) // [0.1.0 1.0.0 1.1.2]

All calls are pure functions of their inputs; the package holds no state and
is safe for concurrent use.
*/
package relq
