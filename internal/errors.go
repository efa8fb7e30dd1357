package internal

import (
	"errors"
	"fmt"
)

var ErrFieldNotFound = errors.New("field not found")

// FetchError reports a transport failure or a non-2xx response from the
// source page.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StructureError means the markup does not have the expected table shape.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return "unexpected page structure: " + e.Reason
}

// MalformedRowError is returned for a country row that cannot be read.
type MalformedRowError struct {
	Row   int
	Cells int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %d: %d cells, need at least 3", e.Row, e.Cells)
}

type ParseError struct {
	Index int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d: cannot parse %q as number: %v", e.Index, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
