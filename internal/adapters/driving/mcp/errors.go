// Package mcp provides an MCP (Model Context Protocol) server adapter for LegalMind.
// It lets AI assistants question a case, search its evidence and record insights.
package mcp

import "errors"

var (
	// ErrMissingDialogueService is returned when the dialogue service is not provided.
	ErrMissingDialogueService = errors.New("mcp: dialogue service is required")

	// ErrMissingRetrievalService is returned when the retrieval service is not provided.
	ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")

	// ErrServiceUnavailable is returned by tools whose optional service is not wired.
	ErrServiceUnavailable = errors.New("mcp: service not available")
)
