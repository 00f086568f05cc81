// Package connectors provides sources that feed evidence into the
// ingestion gate. Each connector knows how to discover uploads in one
// kind of location; ingestion itself stays in the core services.
package connectors
