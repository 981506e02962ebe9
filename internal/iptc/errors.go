// file: internal/iptc/errors.go
// version: 1.0.0
// guid: 5c439547-30a5-4cdd-b5f4-ba6bfb121adc

package iptc

import "errors"

var (
	// ErrFormat marks a malformed IIM byte stream (bad marker, truncated
	// record, length running past the end of the buffer).
	ErrFormat = errors.New("malformed IPTC data")

	// ErrValidation is returned when a value falls outside the bounds the
	// tag table declares for its dataset. The dataset keeps its old value.
	ErrValidation = errors.New("value rejected by tag validation")

	// ErrNotFound is returned when a dataset or tag cannot be located.
	ErrNotFound = errors.New("dataset not found")

	// ErrNotMember is returned when a dataset is not part of the container
	// an operation was invoked on.
	ErrNotMember = errors.New("dataset is not a member of this container")

	// ErrAttached is returned when adding a dataset that already belongs
	// to a container.
	ErrAttached = errors.New("dataset already belongs to a container")

	// ErrEncodingConflict is returned by SetEncodingUTF8 when the data
	// already declares a different character set.
	ErrEncodingConflict = errors.New("data declares a non-UTF-8 character set")
)
