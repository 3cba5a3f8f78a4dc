// Command graphql-syntax lexes and parses GraphQL documents.
//
// About GraphQL
//
// GraphQL is a query language for APIs and a runtime for fulfilling those queries with your existing data.
//
// Source: https://graphql.org
//
// About this module
//
// The module turns GraphQL source text into tokens (pkg/lexer) and an immutable syntax tree (pkg/ast, pkg/astparser).
// Parse failures carry the kind of failure and the line and column they occurred at,
// pkg/operationreport renders them as a GraphQL errors object.
//
// Usage:
//
//	graphql-syntax lex schema.graphql
//	graphql-syntax parse --format json schema.graphql operations.graphql
package main
