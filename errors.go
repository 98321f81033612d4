package stems

import (
	"errors"
	"fmt"
)

// ErrUnknownClass is returned for a verb class label with no rule set.
var ErrUnknownClass = errors.New("unknown verb class")

// ShapeError reports a root that does not satisfy its class constraint.
type ShapeError struct {
	Root   string
	Class  VerbClass
	Ending string
	// Err is set when the class itself is invalid.
	Err error
}

func (e *ShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("root %q: class %q: %v", e.Root, e.Class, e.Err)
	}
	return fmt.Sprintf("root %q does not fit class %s (requires ending %s)", e.Root, e.Class, e.Ending)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// MissingRootError reports a non-prefixed entry without a root1 field.
type MissingRootError struct {
	Lexicon  string
	Headword string
}

func (e *MissingRootError) Error() string {
	return fmt.Sprintf("%s: %s: missing root1", e.Lexicon, e.Headword)
}

// MismatchError reports a recorded stem that differs from its derivation.
type MismatchError struct {
	Lexicon  string
	Headword string
	Stem     StemName
	Derived  string
	Recorded string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %s: %s (%s) derived %q, recorded %q",
		e.Lexicon, e.Headword, e.Stem, e.Stem.Description(), e.Derived, e.Recorded)
}

// EntryError wraps a fault raised while deriving the stems of one entry.
type EntryError struct {
	Lexicon  string
	Headword string
	Err      error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Lexicon, e.Headword, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
