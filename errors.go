package blend2d

import "errors"

// Errors reported by converter construction and execution.
var (
	// ErrInvalidFormat is returned when a FormatInfo violates a format
	// invariant (unsupported depth, overlapping channel masks, bad
	// palette size).
	ErrInvalidFormat = errors.New("blend2d: invalid pixel format")

	// ErrConversionUnsupported is returned when no conversion strategy
	// covers the requested format pair.
	ErrConversionUnsupported = errors.New("blend2d: conversion not supported")

	// ErrInvalidArgument is returned by Convert when buffer geometry is
	// invalid: negative dimensions, a stride smaller than a packed row,
	// or a buffer too short for the requested rows.
	ErrInvalidArgument = errors.New("blend2d: invalid argument")

	// ErrNotInitialized is returned by Convert on a zero or Reset
	// converter.
	ErrNotInitialized = errors.New("blend2d: converter not initialized")

	// ErrOutOfMemory is reserved for lookup-table allocation failure.
	// Go allocation does not fail recoverably, so the current
	// implementation never returns it; it is part of the error
	// taxonomy for callers that map converter errors onto a wider
	// result space.
	ErrOutOfMemory = errors.New("blend2d: out of memory")
)
