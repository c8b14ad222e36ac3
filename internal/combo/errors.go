package combo

import (
	"errors"
	"fmt"
)

var ErrCapacityExceeded = errors.New("combination dictionary capacity exceeded")
var ErrArityMismatch = errors.New("record arity does not match dictionary")
var ErrInvalidArity = errors.New("invalid arity")

// CapacityError reports which dictionary overflowed and by how much.
type CapacityError struct {
	Arity     int
	Attempted int
	Limit     int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: arity %d needs %d records, limit %d", ErrCapacityExceeded, e.Arity, e.Attempted, e.Limit)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
