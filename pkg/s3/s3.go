package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ItfS3 archives recordings received by the gateway.
type ItfS3 interface {
	UploadAudio(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

type s3Client struct {
	uploader   *s3manager.Uploader
	bucketName string
	prefix     string
}

var ErrBucketNotConfigured = errors.New("AWS_BUCKET_NAME is not set")

// New builds a client from AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
// AWS_BUCKET_NAME and the optional AWS_AUDIO_PREFIX.
func New() (ItfS3, error) {
	bucket := os.Getenv("AWS_BUCKET_NAME")
	if bucket == "" {
		return nil, ErrBucketNotConfigured
	}

	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	prefix := os.Getenv("AWS_AUDIO_PREFIX")
	if prefix == "" {
		prefix = "audio"
	}

	return &s3Client{
		uploader:   s3manager.NewUploader(sess),
		bucketName: bucket,
		prefix:     prefix,
	}, nil
}

func (s *s3Client) UploadAudio(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(ObjectKey(s.prefix, key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return out.Location, nil
}

// ObjectKey joins prefix and key with a single slash.
func ObjectKey(prefix, key string) string {
	return path.Join(prefix, path.Base(key))
}

func newSession() (*session.Session, error) {
	cfg := &aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
	}

	if id := os.Getenv("AWS_ACCESS_KEY_ID"); id != "" {
		cfg.Credentials = credentials.NewStaticCredentials(id, os.Getenv("AWS_SECRET_ACCESS_KEY"), "")
	}

	return session.NewSession(cfg)
}
