package s3

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/hupe1980/bibgo/blobstore"
)

// ErrConflict is returned when a conditional write fails because the object
// already exists. It is blobstore.ErrConflict, so callers can match it
// without importing this package.
var ErrConflict = blobstore.ErrConflict

// ExpressStore implements blobstore.Store for S3 Express One Zone.
//
// S3 Express One Zone is a high-performance, single-Availability Zone storage
// class with consistent single-digit millisecond access.
//
/// Key differences from standard S3:
//   - Uses directory buckets (bucket names end with --azid--x-s3)
//   - Requires CreateSession for authentication
//   - Supports conditional writes (If-None-Match) for atomic operations
//
// The conditional write support makes it a useful backend for archive
// manifests: PutIfNotExists turns manifest publication into an atomic
// operation without an external commit log.
type ExpressStore struct {
	client   Client
	bucket   string
	prefix   string
	uploader *manager.Uploader
}

// NewExpressStore creates a new S3 Express One Zone blob store.
// The bucket must be a directory bucket (ending with --azid--x-s3).
func NewExpressStore(client Client, bucket, rootPrefix string) *ExpressStore {
	return &ExpressStore{
		client:   client,
		bucket:   bucket,
		prefix:   rootPrefix,
		uploader: newUploader(client, DefaultUploadConfig()),
	}
}

func (s *ExpressStore) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens a blob for reading.
func (s *ExpressStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return openObject(ctx, s.client, s.bucket, s.key(name))
}

// Create creates a blob for streaming writes.
func (s *ExpressStore) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	return newWritableBlob(ctx, s.uploader, s.bucket, s.key(name), false), nil
}

// Put writes a blob.
func (s *ExpressStore) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(name)),
		Body:          readerFor(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	return err
}

// PutIfNotExists writes a blob only if it doesn't already exist.
// Uses S3 Express conditional writes for atomic create operations.
// Returns ErrConflict if the key already exists.
func (s *ExpressStore) PutIfNotExists(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(name)),
		Body:        readerFor(data),
		IfNoneMatch: aws.String("*"), // Only succeed if object doesn't exist
	})
	if err != nil {
		// S3 Express reports an existing object as PreconditionFailed or
		// ConditionalRequestConflict.
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			code := apiErr.ErrorCode()
			if code == "PreconditionFailed" || code == "ConditionalRequestConflict" {
				return ErrConflict
			}
		}
		return err
	}
	return nil
}

// Delete removes a blob.
func (s *ExpressStore) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	return err
}

// List returns all blob names with the given prefix, sorted.
func (s *ExpressStore) List(ctx context.Context, prefix string) ([]string, error) {
	return listObjects(ctx, s.client, s.bucket, s.key(prefix), s.prefix)
}
