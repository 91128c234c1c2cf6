package relq

import "regexp"

var (
	// Version labels: optional free-text prefix, optional leading 'v',
	// a full numeric triple, optional "-decorator" running to end of input.
	// The match may start anywhere but must reach the end of the string.
	versionRe = regexp.MustCompile(`[vV]?(\d+)\.(\d+)\.(\d+)(?:-(.+))?$`)

	// Match keys: 1..3 numeric components with optional leading 'v' and an
	// optional "-decorator" after the last component present. Full match only.
	keyRe = regexp.MustCompile(`^[vV]?(\d+)(?:\.(\d+)(?:\.(\d+))?)?(?:-(.+))?$`)
)
