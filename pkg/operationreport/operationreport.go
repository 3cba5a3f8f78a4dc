// Package operationreport helps generating the errors object for a GraphQL document that failed to parse.
package operationreport

import (
	"errors"
	"fmt"

	"github.com/tidwall/sjson"
)

type Report struct {
	InternalErrors []error
	ExternalErrors []ExternalError
}

func (r Report) Error() string {
	out := ""
	for i := range r.InternalErrors {
		if i != 0 {
			out += "\n"
		}
		out += fmt.Sprintf("internal: %s", r.InternalErrors[i].Error())
	}
	if len(out) > 0 && len(r.ExternalErrors) > 0 {
		out += "\n"
	}
	for i := range r.ExternalErrors {
		if i != 0 {
			out += "\n"
		}
		out += fmt.Sprintf("external: %s, locations: %+v", r.ExternalErrors[i].Message, r.ExternalErrors[i].Locations)
	}
	return out
}

func (r *Report) HasErrors() bool {
	return len(r.InternalErrors) > 0 || len(r.ExternalErrors) > 0
}

func (r *Report) Reset() {
	r.InternalErrors = r.InternalErrors[:0]
	r.ExternalErrors = r.ExternalErrors[:0]
}

func (r *Report) AddInternalError(err error) {
	r.InternalErrors = append(r.InternalErrors, err)
}

func (r *Report) AddExternalError(gqlError ExternalError) {
	r.ExternalErrors = append(r.ExternalErrors, gqlError)
}

// ErrorsJSON renders the external errors as a GraphQL response errors object:
//
//	{"errors":[{"message":"...","locations":[{"line":1,"column":5}]}]}
//
// Internal errors are not exposed.
func (r Report) ErrorsJSON() ([]byte, error) {
	out := []byte(`{"errors":[]}`)
	var err error
	for i := range r.ExternalErrors {
		out, err = sjson.SetBytes(out, "errors.-1", r.ExternalErrors[i])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

type FormatExternalErrorMessage func(report *Report) string

func ExternalErrorMessage(err error, formatFunction FormatExternalErrorMessage) (message string, ok bool) {
	var report Report
	if errors.As(err, &report) {
		msg := formatFunction(&report)
		return msg, true
	}
	return "", false
}

func UnwrappedErrorMessage(err error) string {
	for result := err; result != nil; result = errors.Unwrap(result) {
		err = result
	}
	return err.Error()
}
