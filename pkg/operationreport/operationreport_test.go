package operationreport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestExternalErrorMessage(t *testing.T) {
	runExternalErrorMessage := func(err error, expectedSuccess bool, expectedMessage string) func(t *testing.T) {
		return func(t *testing.T) {
			msg, ok := ExternalErrorMessage(err, testFormatExternalErrorMessage)
			assert.Equal(t, expectedSuccess, ok)
			assert.Equal(t, expectedMessage, msg)
		}
	}

	t.Run("Passing a non-report returns false",
		runExternalErrorMessage(testErrorLevel1, false, ""),
	)

	t.Run("Passing a report retrieves the inner error",
		runExternalErrorMessage(testWrappedReport, true, externalErrorString),
	)
}

func TestUnwrappedErrorMessage(t *testing.T) {
	actual := UnwrappedErrorMessage(testErrorLevel2)
	assert.Equal(t, testErrorString, actual)
}

func TestReport(t *testing.T) {
	t.Run("error renders internal and external errors", func(t *testing.T) {
		assert.Equal(t, "internal: example internal error\nexternal: example external error 1, locations: [{Line:3 Column:7}]\nexternal: example external error 2, locations: []", testReport.Error())
	})
	t.Run("reset", func(t *testing.T) {
		var report Report
		assert.False(t, report.HasErrors())
		report.AddInternalError(errors.New("internal"))
		report.AddExternalError(NewExternalError("external", 1, 1))
		assert.True(t, report.HasErrors())
		report.Reset()
		assert.False(t, report.HasErrors())
	})
}

func TestReport_ErrorsJSON(t *testing.T) {
	t.Run("external errors", func(t *testing.T) {
		data, err := testReport.ErrorsJSON()
		require.NoError(t, err)

		errs := gjson.GetBytes(data, "errors")
		require.True(t, errs.IsArray())
		assert.Len(t, errs.Array(), 2)
		assert.Equal(t, externalErrorString, gjson.GetBytes(data, "errors.0.message").String())
		assert.Equal(t, int64(3), gjson.GetBytes(data, "errors.0.locations.0.line").Int())
		assert.Equal(t, int64(7), gjson.GetBytes(data, "errors.0.locations.0.column").Int())
		assert.Equal(t, "example external error 2", gjson.GetBytes(data, "errors.1.message").String())
		assert.False(t, gjson.GetBytes(data, "errors.1.locations").Exists())
		assert.False(t, gjson.GetBytes(data, "errors.#(message==\"example internal error\")").Exists())
	})
	t.Run("no errors", func(t *testing.T) {
		data, err := Report{}.ErrorsJSON()
		require.NoError(t, err)
		assert.JSONEq(t, `{"errors":[]}`, string(data))
	})
}

const (
	externalErrorString = "example external error 1"
	testErrorString     = "test error string"
)

var testFormatExternalErrorMessage = func(report *Report) string {
	if len(report.ExternalErrors) > 0 {
		return report.ExternalErrors[0].Message
	}
	return ""
}

var testReport = Report{
	InternalErrors: []error{
		errors.New("example internal error"),
	},
	ExternalErrors: []ExternalError{
		{
			Message:   externalErrorString,
			Locations: []Location{{Line: 3, Column: 7}},
		},
		{
			Message: "example external error 2",
		},
	},
}

var testErrorLevel1 = errors.New(testErrorString)
var testErrorLevel2 = fmt.Errorf("level 2: %w", testErrorLevel1)
var testWrappedReport = fmt.Errorf("level 2: %w", testReport)
