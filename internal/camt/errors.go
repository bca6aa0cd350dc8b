package camt

import "fmt"

// StructureError reports a required XML element missing from the document.
type StructureError struct {
	Element string
}

func (e StructureError) Error() string {
	return fmt.Sprintf("missing required element %s", e.Element)
}

// FormatError reports element text that does not parse as the expected scalar.
type FormatError struct {
	Element string
	Value   string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q", e.Element, e.Value)
}

// MissingFieldError reports a field never observed during a transaction
// detail scan, as opposed to one specific expected child being absent.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("did not find %s", e.Field)
}
