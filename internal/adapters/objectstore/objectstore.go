// Package objectstore wraps the S3 bucket attached to the service.
// The core only reports bucket identity; object transfer is out of scope,
// so the adapter exposes the descriptor and a reachability probe.
package objectstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"user-directory-api/internal/models"
)

// HeadBucketAPI is the subset of the S3 API the adapter uses
type HeadBucketAPI interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Client exposes the bucket descriptor and a reachability check
type Client struct {
	s3         HeadBucketAPI
	descriptor models.BucketDescriptor
}

// NewClient creates an object-store client for the given bucket
func NewClient(api HeadBucketAPI, bucketName, region string) *Client {
	return &Client{
		s3: api,
		descriptor: models.BucketDescriptor{
			BucketName: bucketName,
			Region:     region,
		},
	}
}

// Describe returns the static bucket descriptor
func (c *Client) Describe() models.BucketDescriptor {
	return c.descriptor
}

// Ping verifies the bucket is reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.descriptor.BucketName),
	})
	if err != nil {
		return fmt.Errorf("bucket %s unreachable: %w", c.descriptor.BucketName, err)
	}
	return nil
}
