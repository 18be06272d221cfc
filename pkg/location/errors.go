package location

import "fmt"

// MalformedDataError is returned when encoded location data cannot be decoded
// because a required field is missing or holds a value of the wrong type.
type MalformedDataError struct {
	Field string // Name of the offending field, empty if unknown
	Err   error  // Underlying decoder error, nil for a missing field
}

func (e *MalformedDataError) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("malformed location data: %v", e.Err)
	case e.Err == nil:
		return fmt.Sprintf("malformed location data: missing field %q", e.Field)
	default:
		return fmt.Sprintf("malformed location data: field %q: %v", e.Field, e.Err)
	}
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

func missingField(name string) error {
	return &MalformedDataError{Field: name}
}
