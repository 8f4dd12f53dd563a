package ipfsdeploy

// ProgressEvent represents upload progress to one pinning service.
type ProgressEvent struct {
	// Pinner names the service being uploaded to.
	Pinner string
	// BytesSent is the cumulative bytes streamed so far.
	BytesSent int64
	// TotalBytes is the expected size, or -1 if unknown.
	TotalBytes int64
}

// ProgressCallback is called during uploads to report progress.
// Implementations should be efficient as this may be called frequently.
type ProgressCallback func(event ProgressEvent)
