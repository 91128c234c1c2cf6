package relq

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Version
	}{
		{"1.2.3", Version{Original: "1.2.3", Normalized: "1.2.3", Major: 1, Minor: 2, Point: 3}},
		{"v1.2.3", Version{Original: "v1.2.3", Normalized: "1.2.3", Major: 1, Minor: 2, Point: 3}},
		{"V2.0.0", Version{Original: "V2.0.0", Normalized: "2.0.0", Major: 2, Minor: 0, Point: 0}},
		{"1.2.3-alpha", Version{Original: "1.2.3-alpha", Normalized: "1.2.3-alpha", Decorator: "alpha", Major: 1, Minor: 2, Point: 3}},
		{"v1.2.3-rc.1", Version{Original: "v1.2.3-rc.1", Normalized: "1.2.3-rc.1", Decorator: "rc.1", Major: 1, Minor: 2, Point: 3}},
		// free-text prefix is discarded from the normalized form only
		{"Foo Boo v1.2.3", Version{Original: "Foo Boo v1.2.3", Normalized: "1.2.3", Major: 1, Minor: 2, Point: 3}},
		{"release-1.2.3-beta", Version{Original: "release-1.2.3-beta", Normalized: "1.2.3-beta", Decorator: "beta", Major: 1, Minor: 2, Point: 3}},
		// leading zeros normalize away
		{"001.100.01", Version{Original: "001.100.01", Normalized: "1.100.1", Major: 1, Minor: 100, Point: 1}},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error %v", tc.in, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Parse(%q) = %+v; want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	bad := []string{
		"",
		"release-alpha", // no numeric triple
		"1.2",           // too short
		"v1",
		"abc",
		"1.2.x",
	}

	for _, s := range bad {
		_, err := Parse(s)
		if err == nil {
			t.Fatalf("Parse(%q): want error, got none", s)
		}

		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("Parse(%q): want *ParseError, got %T", s, err)
		}
		if pe.Value != s || pe.What != "version" {
			t.Fatalf("Parse(%q): error carries %q/%q", s, pe.Value, pe.What)
		}
	}
}

// Normalized must parse back to the same tuple.
func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	labels := []string{"v1.2.3", "Foo Boo v1.2.3-rc.1", "001.002.003", "10.20.30-beta"}

	for _, l := range labels {
		v, err := Parse(l)
		if err != nil {
			t.Fatalf("Parse(%q): %v", l, err)
		}

		again, err := Parse(v.Normalized)
		if err != nil {
			t.Fatalf("re-Parse(%q): %v", v.Normalized, err)
		}

		if again.Major != v.Major || again.Minor != v.Minor ||
			again.Point != v.Point || again.Decorator != v.Decorator {
			t.Fatalf("round trip %q -> %q changed tuple: %+v vs %+v", l, v.Normalized, v, again)
		}
	}
}

func TestParseAll_SortsAscending(t *testing.T) {
	t.Parallel()

	in := []string{"v1.1.21", "v0.1.0", "v2.0.0", "v1.1.2", "v1.1.3", "v1.1.20"}

	got, err := ParseAll(in)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}

	want := []string{"0.1.0", "1.1.2", "1.1.3", "1.1.20", "1.1.21", "2.0.0"}
	for i, v := range got {
		if v.Normalized != want[i] {
			t.Fatalf("ParseAll order[%d] = %q; want %q", i, v.Normalized, want[i])
		}
	}
}

// Equal triples keep their input order: the decorator is not a sort key.
func TestParseAll_StableOnEqualTriples(t *testing.T) {
	t.Parallel()

	in := []string{"1.0.0-beta", "1.0.0-alpha", "v1.0.0", "0.9.9"}

	got, err := ParseAll(in)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}

	want := []string{"0.9.9", "1.0.0-beta", "1.0.0-alpha", "v1.0.0"}
	for i, v := range got {
		if v.Original != want[i] {
			t.Fatalf("ParseAll stable order[%d] = %q; want %q", i, v.Original, want[i])
		}
	}

	// re-running yields an identical ordering
	again, err := ParseAll(in)
	if err != nil {
		t.Fatalf("ParseAll (again): %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Fatalf("ParseAll is not deterministic: %v vs %v", got, again)
	}
}

// One bad label fails the whole batch, even when the rest are valid.
func TestParseAll_AllOrNothing(t *testing.T) {
	t.Parallel()

	_, err := ParseAll([]string{"v1.0.0", "release-x", "v2.0.0"})
	if err == nil {
		t.Fatal("ParseAll: want error for unparsable label, got none")
	}

	var pe *ParseError
	if !errors.As(err, &pe) || pe.Value != "release-x" {
		t.Fatalf("ParseAll: want *ParseError for %q, got %v", "release-x", err)
	}
}

func TestExcludeDecorated(t *testing.T) {
	t.Parallel()

	vers, err := ParseAll([]string{"v1.0.0", "v1.1.0-alpha", "v1.2.0", "v2.0.0-rc.1"})
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}

	got := ExcludeDecorated(vers)
	want := []string{"1.0.0", "1.2.0"}
	if len(got) != len(want) {
		t.Fatalf("ExcludeDecorated kept %d records; want %d", len(got), len(want))
	}
	for i, v := range got {
		if v.Normalized != want[i] {
			t.Fatalf("ExcludeDecorated[%d] = %q; want %q", i, v.Normalized, want[i])
		}
	}
}
