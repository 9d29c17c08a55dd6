package area

import "errors"

// Error kinds raised during assembly. All of them are recovered at the
// relation boundary: Assemble logs a diagnostic and returns nil, it
// never propagates a fault to the caller.
var (
	ErrIncompleteRelation = errors.New("incomplete relation")
	ErrOversizedRelation  = errors.New("oversized relation")
	ErrAssemblyFailure    = errors.New("assembly failure")
	ErrInvalidGeometry    = errors.New("invalid geometry")
	ErrTimeout            = errors.New("assembly timed out")
)
