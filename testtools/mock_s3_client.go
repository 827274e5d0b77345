package testtools

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Mock out S3 client. Includes these methods:
// ListBuckets(*ListBucketsInput)
// ListObjectVersionsPages(*ListObjectVersionsInput, fn)
// DeleteObject(*DeleteObjectInput)
// DeleteBucket(*DeleteBucketInput)
type MockS3Client struct {
	s3iface.S3API

	BucketNames  []string
	VersionPages [][]*s3.ObjectVersion
	MarkerPages  [][]*s3.DeleteMarkerEntry
	Err          bool

	DeletedObjects []*s3.DeleteObjectInput
	DeletedBuckets []string
}

func NewMockS3Client(err bool) *MockS3Client {
	return &MockS3Client{Err: err}
}

func (client *MockS3Client) ListBuckets(input *s3.ListBucketsInput) (*s3.ListBucketsOutput, error) {
	if client.Err {
		return nil, awserr.New("MockListBuckets", "mock ListBuckets error", nil)
	}
	buckets := make([]*s3.Bucket, 0, len(client.BucketNames))
	for _, name := range client.BucketNames {
		buckets = append(buckets, &s3.Bucket{Name: aws.String(name)})
	}
	return &s3.ListBucketsOutput{Buckets: buckets}, nil
}

func (client *MockS3Client) ListObjectVersionsPages(input *s3.ListObjectVersionsInput,
	callback func(*s3.ListObjectVersionsOutput, bool) bool) error {
	if client.Err {
		return awserr.New("MockListObjectVersions", "mock ListObjectVersions error", nil)
	}
	pageCount := len(client.VersionPages)
	if len(client.MarkerPages) > pageCount {
		pageCount = len(client.MarkerPages)
	}
	for i := 0; i < pageCount; i++ {
		output := &s3.ListObjectVersionsOutput{Name: input.Bucket}
		if i < len(client.VersionPages) {
			output.Versions = client.VersionPages[i]
		}
		if i < len(client.MarkerPages) {
			output.DeleteMarkers = client.MarkerPages[i]
		}
		if !callback(output, i == pageCount-1) {
			break
		}
	}
	return nil
}

func (client *MockS3Client) DeleteObject(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
	if client.Err {
		return nil, awserr.New("MockDeleteObject", "mock DeleteObject error", nil)
	}
	client.DeletedObjects = append(client.DeletedObjects, input)
	return &s3.DeleteObjectOutput{}, nil
}

func (client *MockS3Client) DeleteBucket(input *s3.DeleteBucketInput) (*s3.DeleteBucketOutput, error) {
	if client.Err {
		return nil, awserr.New("MockDeleteBucket", "mock DeleteBucket error", nil)
	}
	client.DeletedBuckets = append(client.DeletedBuckets, aws.StringValue(input.Bucket))
	return &s3.DeleteBucketOutput{}, nil
}
