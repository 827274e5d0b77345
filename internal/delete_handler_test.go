package internal_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s3sweep/s3sweep/internal"
	"github.com/s3sweep/s3sweep/pkg/storages/storage"
	"github.com/s3sweep/s3sweep/testtools"
)

func countCallsWithPrefix(calls []string, prefix string) int {
	count := 0
	for _, call := range calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}

func TestHandleDeleteBucketsEmptiesAndDeletesInOrder(t *testing.T) {
	client := testtools.NewInMemoryBucketClient().
		AddBucket("a",
			storage.ObjectVersion{Key: "k1", VersionID: "v1"},
			storage.ObjectVersion{Key: "k2", VersionID: "v2"}).
		AddBucket("b",
			storage.ObjectVersion{Key: "k3", VersionID: "v3"})
	var output bytes.Buffer

	results := internal.NewDeleteHandler(client, &output).HandleDeleteBuckets([]string{"a", "b"})

	require.Len(t, results, 2)
	for _, result := range results {
		assert.NoError(t, result.Err)
		assert.Equal(t, "deleted", result.Describe())
	}
	assert.False(t, client.HasBucket("a"))
	assert.False(t, client.HasBucket("b"))
	assert.Equal(t, []string{
		"ListObjectVersions(a)",
		"DeleteObject(a, k1, v1)",
		"DeleteObject(a, k2, v2)",
		"DeleteBucket(a)",
		"ListObjectVersions(b)",
		"DeleteObject(b, k3, v3)",
		"DeleteBucket(b)",
	}, client.Calls)
	assert.Contains(t, output.String(), "Deleting bucket: a")
	assert.Contains(t, output.String(), "Deleting bucket: b")
}

func TestEmptyStageFailureSkipsDeleteAndContinues(t *testing.T) {
	client := testtools.NewInMemoryBucketClient().
		AddBucket("a").
		AddBucket("b").
		AddBucket("c")
	client.ListVersionsErrs["b"] = errors.New("listing denied")
	var output bytes.Buffer

	results := internal.NewDeleteHandler(client, &output).HandleDeleteBuckets([]string{"a", "b", "c"})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, internal.StageEmpty, results[1].Stage)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)

	assert.NotContains(t, client.Calls, "DeleteBucket(b)")
	assert.Contains(t, client.Calls, "DeleteBucket(a)")
	assert.Contains(t, client.Calls, "DeleteBucket(c)")
	assert.Contains(t, output.String(), "Error emptying bucket b: ")
}

func TestObjectDeletionFailureFailsEmptyStage(t *testing.T) {
	client := testtools.NewInMemoryBucketClient().
		AddBucket("a", storage.ObjectVersion{Key: "k1", VersionID: "v1"})
	client.DeleteObjectErrs["a"] = errors.New("access denied")
	var output bytes.Buffer

	results := internal.NewDeleteHandler(client, &output).HandleDeleteBuckets([]string{"a"})

	require.Len(t, results, 1)
	assert.Equal(t, internal.StageEmpty, results[0].Stage)
	assert.NotContains(t, client.Calls, "DeleteBucket(a)")
	assert.True(t, client.HasBucket("a"))
}

func TestDeleteStageFailureIsIsolated(t *testing.T) {
	client := testtools.NewInMemoryBucketClient().
		AddBucket("a").
		AddBucket("b")
	client.DeleteBucketErrs["a"] = errors.New("bucket locked")
	var output bytes.Buffer

	results := internal.NewDeleteHandler(client, &output).HandleDeleteBuckets([]string{"a", "b"})

	require.Len(t, results, 2)
	assert.Equal(t, internal.StageDelete, results[0].Stage)
	assert.Error(t, results[0].Err)
	assert.Contains(t, results[0].Describe(), "delete failed")
	assert.NoError(t, results[1].Err)
	assert.False(t, client.HasBucket("b"))
	assert.Contains(t, output.String(), "Error deleting bucket a: ")
}

func TestEmptyBucketIsIdempotent(t *testing.T) {
	client := testtools.NewInMemoryBucketClient().
		AddBucket("a",
			storage.ObjectVersion{Key: "k1", VersionID: "v1"},
			storage.ObjectVersion{Key: "k2", VersionID: "v2"})
	handler := internal.NewDeleteHandler(client, &bytes.Buffer{})

	require.NoError(t, handler.EmptyBucket("a"))
	assert.Equal(t, 2, countCallsWithPrefix(client.Calls, "DeleteObject("))

	require.NoError(t, handler.EmptyBucket("a"))
	assert.Equal(t, 2, countCallsWithPrefix(client.Calls, "DeleteObject("))
}
