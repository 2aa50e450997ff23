// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to publish snapshot artifacts (the CSV
// directory and the GeoJSON export) to an S3-compatible bucket. This
// abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	publisher := storage.NewPublisher(client, cfg.Bucket, log)
//	err = publisher.PublishFile(ctx, "airports.geojson", "airports.geojson", "application/geo+json")
package storage
