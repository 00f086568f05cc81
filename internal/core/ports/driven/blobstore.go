package driven

// BlobStore keeps the raw bytes of accepted uploads.
type BlobStore interface {
	// Put writes content under a name derived from filename and returns
	// the location it was written to.
	Put(filename string, content []byte) (string, error)

	// Remove deletes a previously written blob. Missing blobs are ignored.
	Remove(location string) error
}
