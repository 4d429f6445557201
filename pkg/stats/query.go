package stats

import (
	"errors"
	"fmt"

	"github.com/itchyny/gojq"
)

// ErrNoQueryResult is returned when a query yields nothing.
var ErrNoQueryResult = errors.New("stats: query produced no result")

// Select runs a jq expression over a document from ParseDocument and returns
// the first result. It is used to pull the stats mapping out of a larger
// build report, e.g. ".liquid.stats". An empty query returns doc unchanged.
func Select(doc any, query string) (any, error) {
	if query == "" || query == "." {
		return doc, nil
	}

	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("stats: invalid query %q: %w", query, err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("stats: invalid query %q: %w", query, err)
	}

	iter := code.Run(doc)
	v, ok := iter.Next()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoQueryResult, query)
	}
	if qerr, isErr := v.(error); isErr {
		return nil, fmt.Errorf("stats: query %q: %w", query, qerr)
	}
	return v, nil
}
