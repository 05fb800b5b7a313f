package domain

import "fmt"

// QueryExecutionError is a failed report execution: connectivity loss, a
// malformed generated query, or any other error surfaced by the database.
// It carries the report name and its parameters; no retry is attempted.
type QueryExecutionError struct {
	Report string
	Params map[string]any
	Err    error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("report %s (params %v): query execution failed: %v", e.Report, e.Params, e.Err)
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}

// ResultMappingError means a returned row did not match the projection the
// report expected. It indicates a bug in query construction, not bad input.
type ResultMappingError struct {
	Report string
	Err    error
}

func (e *ResultMappingError) Error() string {
	return fmt.Sprintf("report %s: result row mapping failed: %v", e.Report, e.Err)
}

func (e *ResultMappingError) Unwrap() error {
	return e.Err
}
