package idtheory

import (
	"errors"
	"fmt"
)

// InvalidNamespaceError reports a namespace argument that does not have the
// canonical UUID shape required for name-based derivation.
type InvalidNamespaceError struct {
	Namespace string
}

func (e *InvalidNamespaceError) Error() string {
	return fmt.Sprintf("idtheory: invalid namespace UUID %q", e.Namespace)
}

// AsInvalidNamespace unwraps err as an *InvalidNamespaceError.
func AsInvalidNamespace(err error) (*InvalidNamespaceError, bool) {
	var nsErr *InvalidNamespaceError
	if errors.As(err, &nsErr) {
		return nsErr, true
	}
	return nil, false
}
