// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package uniprot

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAccessions is returned when a lookup is asked for zero accessions.
	ErrNoAccessions = errors.New("no accessions supplied")

	// ErrKeyMissing marks a SchemaError for a required key that is absent.
	ErrKeyMissing = errors.New("required key missing")

	// ErrWrongType marks a SchemaError for a value of an unexpected JSON type.
	ErrWrongType = errors.New("unexpected value type")
)

// NetworkError reports a failed round trip to UniProt: DNS, connection,
// timeout, or cancellation.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("UniProt request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not a JSON object.
type DecodeError struct {
	// StatusCode is the HTTP status of the undecodable response.
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding UniProt response (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SchemaError reports a response that lacks a required key or holds a value
// of the wrong type. Entry is the index in results, or -1 for the top level.
type SchemaError struct {
	Entry int
	Key   string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Entry < 0 {
		return fmt.Sprintf("UniProt response: %q: %v", e.Key, e.Err)
	}
	if e.Key == "" {
		return fmt.Sprintf("UniProt response: results[%d]: %v", e.Entry, e.Err)
	}
	return fmt.Sprintf("UniProt response: results[%d].%s: %v", e.Entry, e.Key, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
