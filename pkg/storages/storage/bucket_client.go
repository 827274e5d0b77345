package storage

// ObjectVersion identifies one deletable unit inside a versioned bucket.
// For buckets without versioning the VersionID is empty.
type ObjectVersion struct {
	Key       string
	VersionID string
}

// BucketClient is the storage backend surface the tool consumes.
type BucketClient interface {
	// ListBuckets returns the names of all buckets visible to the caller.
	ListBuckets() ([]string, error)

	// ListObjectVersions returns every object version currently in the
	// bucket, including delete markers.
	ListObjectVersions(bucket string) ([]ObjectVersion, error)

	DeleteObject(bucket, key, versionID string) error
	DeleteBucket(bucket string) error
}
