package service

import (
	"errors"
	"fmt"
)

// ErrNoPatterns indicates none of the known vtable patterns were present:
// the file is either already patched or not a recognized generator output.
var ErrNoPatterns = errors.New("no UniFFI callback vtable patterns found to patch")

// StructuralMismatchError reports an interface whose vtable declaration
// matched but whose generated initializer block did not.
type StructuralMismatchError struct {
	Interface string
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("found vtable static for %s, but init function pattern did not match", e.Interface)
}

// PartialPatchError reports that only a subset of the known interfaces
// matched. The file is left untouched.
type PartialPatchError struct {
	Patched int
	Total   int
}

func (e *PartialPatchError) Error() string {
	return fmt.Sprintf("partially patched file (%d/%d interfaces), refusing to continue", e.Patched, e.Total)
}
