package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configures the S3-compatible backend (AWS S3, Cloudflare R2,
// MinIO). PublicBaseURL is the domain objects are served from; it defaults
// to endpoint/bucket path-style addressing.
type S3Options struct {
	AccessKey     string
	SecretKey     string
	Bucket        string
	Endpoint      string
	Region        string
	PublicBaseURL string
}

// S3Store persists blobs through the aws-sdk-go-v2 S3 client.
type S3Store struct {
	client        *s3.Client
	bucket        string
	endpoint      string
	publicBaseURL string
}

// NewS3Store validates the options and builds the SDK client. Path-style
// addressing avoids TLS issues with bucket subdomains on R2-style
// endpoints.
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	if opts.AccessKey == "" || opts.SecretKey == "" || opts.Bucket == "" || opts.Endpoint == "" {
		return nil, fmt.Errorf("blobstore: s3 configuration is incomplete")
	}
	region := opts.Region
	if region == "" {
		region = "auto"
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     opts.AccessKey,
				SecretAccessKey: opts.SecretKey,
			}, nil
		}))),
	)
	if err != nil {
		return nil, fmt.Errorf("blobstore: load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	})
	return &S3Store{
		client:        client,
		bucket:        opts.Bucket,
		endpoint:      strings.TrimRight(opts.Endpoint, "/"),
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the object and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("blobstore: put object: %w", err)
	}
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
	}
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}

// Delete removes the object named by the URL. The key is everything after
// the public base (or bucket) segment.
func (s *S3Store) Delete(ctx context.Context, url string) error {
	key := s.keyFromURL(url)
	if key == "" {
		return fmt.Errorf("blobstore: url %q is outside bucket %q", url, s.bucket)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("blobstore: delete object: %w", err)
	}
	return nil
}

func (s *S3Store) keyFromURL(url string) string {
	if s.publicBaseURL != "" {
		if rest, ok := strings.CutPrefix(url, s.publicBaseURL+"/"); ok {
			return rest
		}
	}
	prefix := fmt.Sprintf("%s/%s/", s.endpoint, s.bucket)
	if rest, ok := strings.CutPrefix(url, prefix); ok {
		return rest
	}
	return ""
}

var _ Store = (*S3Store)(nil)
