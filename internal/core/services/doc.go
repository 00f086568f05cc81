// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The dialogue pipeline is:
//
//	DialogueService -> Assembler -> Ranker -> CollectionStore
//	                -> Generator (LLMService) or Fallback
//
// Services depend only on domain and ports; the optional LLM and
// embedding services may be nil and are degraded around, never required.
package services
