package testtools

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/s3sweep/s3sweep/pkg/storages/storage"
)

// InMemoryBucketClient is a storage.BucketClient over an in-memory bucket
// map. It records every call in order and supports per-bucket fault
// injection, so tests can assert both behavior and call sequencing.
type InMemoryBucketClient struct {
	bucketOrder []string
	buckets     map[string][]storage.ObjectVersion

	Calls []string

	ListBucketsErr   error
	ListVersionsErrs map[string]error
	DeleteObjectErrs map[string]error
	DeleteBucketErrs map[string]error
}

func NewInMemoryBucketClient() *InMemoryBucketClient {
	return &InMemoryBucketClient{
		buckets:          make(map[string][]storage.ObjectVersion),
		ListVersionsErrs: make(map[string]error),
		DeleteObjectErrs: make(map[string]error),
		DeleteBucketErrs: make(map[string]error),
	}
}

func (client *InMemoryBucketClient) AddBucket(name string, versions ...storage.ObjectVersion) *InMemoryBucketClient {
	client.bucketOrder = append(client.bucketOrder, name)
	client.buckets[name] = versions
	return client
}

func (client *InMemoryBucketClient) record(format string, args ...interface{}) {
	client.Calls = append(client.Calls, fmt.Sprintf(format, args...))
}

func (client *InMemoryBucketClient) ListBuckets() ([]string, error) {
	client.record("ListBuckets")
	if client.ListBucketsErr != nil {
		return nil, client.ListBucketsErr
	}
	names := make([]string, len(client.bucketOrder))
	copy(names, client.bucketOrder)
	return names, nil
}

func (client *InMemoryBucketClient) ListObjectVersions(bucket string) ([]storage.ObjectVersion, error) {
	client.record("ListObjectVersions(%s)", bucket)
	if err := client.ListVersionsErrs[bucket]; err != nil {
		return nil, err
	}
	versions, ok := client.buckets[bucket]
	if !ok {
		return nil, errors.Errorf("bucket '%s' does not exist", bucket)
	}
	listed := make([]storage.ObjectVersion, len(versions))
	copy(listed, versions)
	return listed, nil
}

func (client *InMemoryBucketClient) DeleteObject(bucket, key, versionID string) error {
	client.record("DeleteObject(%s, %s, %s)", bucket, key, versionID)
	if err := client.DeleteObjectErrs[bucket]; err != nil {
		return err
	}
	versions, ok := client.buckets[bucket]
	if !ok {
		return errors.Errorf("bucket '%s' does not exist", bucket)
	}
	remaining := make([]storage.ObjectVersion, 0, len(versions))
	for _, version := range versions {
		if version.Key == key && version.VersionID == versionID {
			continue
		}
		remaining = append(remaining, version)
	}
	client.buckets[bucket] = remaining
	return nil
}

func (client *InMemoryBucketClient) DeleteBucket(bucket string) error {
	client.record("DeleteBucket(%s)", bucket)
	if err := client.DeleteBucketErrs[bucket]; err != nil {
		return err
	}
	versions, ok := client.buckets[bucket]
	if !ok {
		return errors.Errorf("bucket '%s' does not exist", bucket)
	}
	if len(versions) > 0 {
		return errors.Errorf("bucket '%s' is not empty", bucket)
	}
	delete(client.buckets, bucket)
	for i, name := range client.bucketOrder {
		if name == bucket {
			client.bucketOrder = append(client.bucketOrder[:i], client.bucketOrder[i+1:]...)
			break
		}
	}
	return nil
}

// HasBucket reports whether the bucket still exists.
func (client *InMemoryBucketClient) HasBucket(name string) bool {
	_, ok := client.buckets[name]
	return ok
}

// MutationCalls counts the destructive calls issued so far.
func (client *InMemoryBucketClient) MutationCalls() int {
	count := 0
	for _, call := range client.Calls {
		if strings.HasPrefix(call, "Delete") {
			count++
		}
	}
	return count
}
