// Where: internal/infra/sitemapio/errors.go
// What: Persistence error classes.
// Why: Separate unreadable sources from malformed content for callers.
package sitemapio

import "errors"

var (
	// ErrParse reports content that is not a JSON/YAML object.
	ErrParse = errors.New("parse error")
	// ErrIO reports a source or target that could not be accessed.
	ErrIO = errors.New("io error")
)
