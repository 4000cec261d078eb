// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := awss3.NewFromConfig(cfg) // github.com/aws/aws-sdk-go-v2/service/s3
//	store := s3.NewStore(client, "my-bucket", "catalogs/research/")
//
// # Features
//
//   - Streaming multipart uploads for large archive objects
//   - CRC32C checksums validated by S3 on upload
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//
// ExpressStore targets S3 Express One Zone directory buckets and adds
// PutIfNotExists, backed by conditional writes.
package s3
