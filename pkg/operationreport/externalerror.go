package operationreport

import (
	"fmt"
)

// ExternalError is an error meant to be shown to the author of a document
type ExternalError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

// Location is the 1-based line and column an ExternalError points at
type Location struct {
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

func (e ExternalError) Error() string {
	if len(e.Locations) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Locations[0].Line, e.Locations[0].Column)
}

// NewExternalError builds an ExternalError pointing at line and column, a zero line omits the location.
func NewExternalError(message string, line, column uint32) ExternalError {
	out := ExternalError{
		Message: message,
	}
	if line != 0 {
		out.Locations = []Location{{Line: line, Column: column}}
	}
	return out
}
