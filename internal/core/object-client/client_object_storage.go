package objectclient

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	cfg "github.com/smartprobono/intake-api/internal/config"
)

type S3Client struct {
	client *s3.Client
	region string
	bucket string
}

// NewS3Client builds the archive client, or returns (nil, nil) when the
// bucket is not configured so the archiver degrades to a no-op.
func NewS3Client(ctx context.Context, cfg *cfg.Config) (ObjectClient, error) {
	if cfg.UploadBucket == "" || cfg.AwsAccessKey == "" || cfg.AwsSecretKey == "" {
		return nil, nil
	}

	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(cfg.AwsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AwsAccessKey, cfg.AwsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	log.Println("Upload archive bucket configured")

	return &S3Client{
		client: client,
		region: cfg.AwsRegion,
		bucket: cfg.UploadBucket,
	}, nil
}

// UploadFile stores the object and returns its public URL.
func (c *S3Client) UploadFile(ctx context.Context, bucket, key string, data io.Reader, contentType string) (string, error) {
	uploader := manager.NewUploader(c.client)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	}

	ctxUpload, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	_, err := uploader.Upload(ctxUpload, input)
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, c.region, key)
	return url, nil
}

// Bucket exposes the configured archive bucket name.
func (c *S3Client) Bucket() string { return c.bucket }
