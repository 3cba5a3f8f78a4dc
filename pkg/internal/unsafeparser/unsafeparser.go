// Package unsafeparser is for testing purposes only when error handling is overhead and panics are ok
package unsafeparser

import (
	"os"

	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
	"github.com/TykTechnologies/graphql-syntax/pkg/astparser"
)

func ParseGraphqlDocumentString(input string) *ast.Document {
	doc, report := astparser.ParseGraphqlDocumentString(input)
	if report.HasErrors() {
		panic(report.Error())
	}
	return doc
}

func ParseGraphqlDocumentFile(filePath string) *ast.Document {
	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}
	doc, report := astparser.ParseGraphqlDocumentBytes(fileBytes)
	if report.HasErrors() {
		panic(report.Error())
	}
	return doc
}
