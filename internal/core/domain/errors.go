package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown provider or content type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrLLMUnavailable indicates the generation backend is not configured
	// or could not be reached. Callers fall back to templated responses.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not configured.
	// The embedding scorer degrades to lexical scoring.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
