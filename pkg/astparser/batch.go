package astparser

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
)

// SourceError attaches the index of the failing source to a parse error.
type SourceError struct {
	Index int
	Err   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %d: %s", e.Index, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ParseConcurrently parses independent documents on up to concurrency goroutines,
// each with a parser of its own. A concurrency below one means no limit.
// Documents are returned in the order of sources. On failure the documents are nil and
// the error is the *SourceError with the lowest index among the sources that were parsed.
// ctx is checked before each parse starts, a running parse is never interrupted.
func ParseConcurrently(ctx context.Context, sources []string, concurrency int, options ...Option) ([]*ast.Document, error) {

	documents := make([]*ast.Document, len(sources))
	errs := make([]error, len(sources))

	group, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		group.SetLimit(concurrency)
	}

	for i := range sources {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			document, err := NewParser(options...).Parse(sources[i])
			if err != nil {
				errs[i] = &SourceError{Index: i, Err: err}
				return errs[i]
			}
			documents[i] = document
			return nil
		})
	}

	groupErr := group.Wait()

	for i := range errs {
		if errs[i] != nil {
			return nil, errs[i]
		}
	}

	if groupErr != nil {
		return nil, groupErr
	}

	return documents, nil
}
