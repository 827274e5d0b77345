package s3

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/pkg/errors"

	"github.com/s3sweep/s3sweep/pkg/storages/storage"
)

// Client implements storage.BucketClient on top of the AWS S3 API.
type Client struct {
	s3API s3iface.S3API
}

func NewClient(config *Config) (*Client, error) {
	sess, err := createSession(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AWS session")
	}
	return &Client{s3API: s3.New(sess)}, nil
}

func NewClientWithAPI(s3API s3iface.S3API) *Client {
	return &Client{s3API: s3API}
}

func (client *Client) ListBuckets() ([]string, error) {
	output, err := client.s3API.ListBuckets(&s3.ListBucketsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buckets")
	}
	names := make([]string, 0, len(output.Buckets))
	for _, bucket := range output.Buckets {
		names = append(names, aws.StringValue(bucket.Name))
	}
	return names, nil
}

// ListObjectVersions walks every page of the bucket's version listing.
// Delete markers are versions too and must be removed before the bucket
// itself can be deleted.
func (client *Client) ListObjectVersions(bucket string) ([]storage.ObjectVersion, error) {
	versions := make([]storage.ObjectVersion, 0)
	input := &s3.ListObjectVersionsInput{
		Bucket: aws.String(bucket),
	}
	err := client.s3API.ListObjectVersionsPages(input,
		func(out *s3.ListObjectVersionsOutput, _ bool) bool {
			for _, version := range out.Versions {
				versions = append(versions, storage.ObjectVersion{
					Key:       aws.StringValue(version.Key),
					VersionID: aws.StringValue(version.VersionId),
				})
			}
			for _, marker := range out.DeleteMarkers {
				versions = append(versions, storage.ObjectVersion{
					Key:       aws.StringValue(marker.Key),
					VersionID: aws.StringValue(marker.VersionId),
				})
			}
			return true
		})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list object versions in bucket '%s'", bucket)
	}
	return versions, nil
}

func (client *Client) DeleteObject(bucket, key, versionID string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if versionID != "" {
		input.VersionId = aws.String(versionID)
	}
	_, err := client.s3API.DeleteObject(input)
	return errors.Wrapf(err, "failed to delete s3 object '%s' (version '%s')", key, versionID)
}

func (client *Client) DeleteBucket(bucket string) error {
	_, err := client.s3API.DeleteBucket(&s3.DeleteBucketInput{Bucket: aws.String(bucket)})
	return errors.Wrapf(err, "failed to delete bucket '%s'", bucket)
}
