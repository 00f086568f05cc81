// Package domain defines the core business entities for LegalMind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Case: A legal matter that owns evidence, turns and insights
//   - Document: An ingested unit of evidence stored in a collection
//   - Evidence: The upload record that produced a Document
//   - Turn: One message of a case dialogue
//   - Insight: A saved insight, argument or todo
//   - ContextBundle: The per-query composite handed to generation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
