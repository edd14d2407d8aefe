package jsonvalue

import "errors"

var (
	// ErrInvalidJSON indicates the input is not a single well-formed JSON value
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrMaxDepth indicates the document nests objects/arrays deeper than allowed
	ErrMaxDepth = errors.New("maximum JSON nesting depth exceeded")

	// ErrUnknownKind indicates a Value with an unrecognized kind was serialized
	ErrUnknownKind = errors.New("unknown JSON value kind")
)
