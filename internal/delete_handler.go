package internal

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/wal-g/tracelog"

	"github.com/s3sweep/s3sweep/pkg/storages/storage"
)

type Stage string

const (
	StageEmpty  Stage = "empty"
	StageDelete Stage = "delete"
)

// BucketResult is the outcome of one bucket in the batch. A zero Stage
// means both stages succeeded.
type BucketResult struct {
	Bucket string
	Stage  Stage
	Err    error
}

func (result BucketResult) Describe() string {
	if result.Err == nil {
		return "deleted"
	}
	return fmt.Sprintf("%s failed: %v", result.Stage, result.Err)
}

// DeleteHandler empties and deletes buckets in order. Failures are isolated
// per bucket: one bucket failing never blocks attempts on the rest, and the
// deletions are not reversible.
type DeleteHandler struct {
	client storage.BucketClient
	output io.Writer
}

func NewDeleteHandler(client storage.BucketClient, output io.Writer) *DeleteHandler {
	return &DeleteHandler{client: client, output: output}
}

func (h *DeleteHandler) HandleDeleteBuckets(buckets []string) []BucketResult {
	results := make([]BucketResult, 0, len(buckets))
	for _, bucket := range buckets {
		results = append(results, h.deleteBucket(bucket))
	}
	return results
}

// deleteBucket runs the two stages for one bucket. The delete stage is
// skipped when emptying failed: most backends reject deletion of a
// non-empty bucket, and both stages are harmless to retry on a later run.
func (h *DeleteHandler) deleteBucket(bucket string) BucketResult {
	fmt.Fprintf(h.output, "Deleting bucket: %s\n", bucket)

	if err := h.EmptyBucket(bucket); err != nil {
		fmt.Fprintf(h.output, "Error emptying bucket %s: %v\n", bucket, err)
		return BucketResult{Bucket: bucket, Stage: StageEmpty, Err: err}
	}

	if err := h.client.DeleteBucket(bucket); err != nil {
		fmt.Fprintf(h.output, "Error deleting bucket %s: %v\n", bucket, err)
		return BucketResult{Bucket: bucket, Stage: StageDelete, Err: err}
	}

	return BucketResult{Bucket: bucket}
}

// EmptyBucket deletes every object version in the bucket, delete markers
// included. Emptying an already-empty bucket is a no-op.
func (h *DeleteHandler) EmptyBucket(bucket string) error {
	versions, err := h.client.ListObjectVersions(bucket)
	if err != nil {
		return errors.Wrapf(err, "failed to list object versions in bucket '%s'", bucket)
	}
	tracelog.DebugLogger.Printf("bucket %s holds %d object versions", bucket, len(versions))

	for _, version := range versions {
		err = h.client.DeleteObject(bucket, version.Key, version.VersionID)
		if err != nil {
			return errors.Wrapf(err, "failed to delete object '%s' (version '%s')",
				version.Key, version.VersionID)
		}
	}
	return nil
}
