// Where: internal/domain/sitemap/errors.go
// What: Error taxonomy for site map transformations.
// Why: Let callers classify precondition failures with errors.Is.
package sitemap

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch reports a document whose shape does not allow the transformation.
var ErrTypeMismatch = errors.New("type mismatch")

// KindMissing is reported when a required field is absent.
const KindMissing = "missing"

// TypeMismatchError describes which field had the wrong shape.
type TypeMismatchError struct {
	Field string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	if e.Got == KindMissing {
		return fmt.Sprintf("%s: document has no %q field", ErrTypeMismatch, e.Field)
	}
	return fmt.Sprintf("%s: field %q must be an object, got %s", ErrTypeMismatch, e.Field, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
