// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CollectionStore: Per-collection document persistence
//   - CaseStore: Case persistence
//   - TurnStore: Dialogue turn persistence
//   - InsightStore: Insight, argument and todo persistence
//   - EvidenceStore: Evidence metadata and fingerprint lookup
//   - BlobStore: Raw upload bytes
//   - ExtractorRegistry: Text extraction from raw uploads
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Generation backend. Without it, answers come from the offline fallback.
//   - EmbeddingService: Vector embeddings. Without it, ranking stays lexical.
//   - PromptStore: User-editable prompts. Without it, built-in prompts are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
