// Package storage wraps the MinIO Go client for reading build artifacts from
// an S3 compatible bucket.
//
// The Client interface is deliberately small: the server only ever checks a
// bucket, stats one object and streams it. It is mocked in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	info, err := client.StatObject(ctx, "builds", "app-debug.apk", minio.StatObjectOptions{})
//	if storage.IsNotFound(err) {
//	    // 404
//	}
package storage
