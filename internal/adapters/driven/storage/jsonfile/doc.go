// Package jsonfile provides filesystem implementations of driven port
// interfaces that need no database.
//
// Adapters:
//   - CollectionStore: one JSON document array per collection
//   - BlobStore: raw evidence files under the data directory
//
// Writes go to a temporary file that is renamed into place, so readers
// never observe a partially written collection.
package jsonfile
