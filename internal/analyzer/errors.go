package analyzer

import "fmt"

// UnsupportedFormatError means no analyzer is registered for the requested
// format discriminator. Fatal for the call.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// MalformedInputError means the whole document failed to parse under a
// format that requires full-document parsing. Fatal for the call; no
// partial forest is returned.
type MalformedInputError struct {
	Format string
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s input: %v", e.Format, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
