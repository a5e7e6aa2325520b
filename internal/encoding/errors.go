package encoding

import (
	"fmt"
)

// FormatError is returned for a field assignment whose bit range or value
// can't be parsed.
type FormatError struct {
	Token  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed field %q: %s", e.Token, e.Reason)
}

// EncodingError is returned when a field value has bits set beyond the
// width of the range it is assigned to.
type EncodingError struct {
	Token string
	Value uint64
	Width uint
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("value %#x of field %q does not fit in %d bit(s)", e.Value, e.Token, e.Width)
}
