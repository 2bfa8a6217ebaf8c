package loader

import "errors"

// ErrInputIO indicates the input stream could not be read at all (spec.md
// §7's InputIO kind: fatal, reported and exit 1). Malformed individual
// lines never reach this sentinel — those are InputParse warnings, kept
// out of the error return entirely per §7's "skip with a warning; continue"
// policy.
var ErrInputIO = errors.New("loader: cannot read input")
