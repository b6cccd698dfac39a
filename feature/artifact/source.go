package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"syscall"
	"time"

	"apk-server/core/storage"

	"github.com/minio/minio-go/v7"
)

var (
	// ErrNotFound is returned when the artifact does not exist at its source.
	ErrNotFound = errors.New("artifact not found")
	// ErrBucketMissing is returned when the bucket holding the artifact does not exist.
	ErrBucketMissing = errors.New("bucket not found")
)

// Info describes an artifact without reading it.
type Info struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Source provides read access to the artifact.
type Source interface {
	// Stat returns the artifact metadata or ErrNotFound.
	Stat(ctx context.Context) (Info, error)
	// Open returns a stream over the artifact content. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, Info, error)
	// Location describes where the artifact is read from, for logs.
	Location() string
}

// NewSource builds the source selected by cfg.Source.
func NewSource(cfg Config, root string, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceLocal, "":
		return NewLocalSource(filepath.Join(root, filepath.FromSlash(cfg.Path))), nil
	case SourceBucket:
		if client == nil {
			return nil, fmt.Errorf("artifact source %q requires a storage client", cfg.Source)
		}
		return NewBucketSource(client, bucket, cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown artifact source %q", cfg.Source)
	}
}

// LocalSource reads the artifact from the filesystem.
type LocalSource struct {
	path string
}

// NewLocalSource creates a source for the file at path.
func NewLocalSource(path string) *LocalSource {
	return &LocalSource{path: path}
}

// Location returns the file path.
func (s *LocalSource) Location() string {
	return s.path
}

// Stat reports a missing path or a directory as ErrNotFound.
func (s *LocalSource) Stat(_ context.Context) (Info, error) {
	st, err := os.Stat(s.path)
	if err != nil {
		return Info{}, classify(err)
	}
	if st.IsDir() {
		return Info{}, fmt.Errorf("%s is a directory: %w", s.path, ErrNotFound)
	}
	return Info{Name: st.Name(), Size: st.Size(), ModTime: st.ModTime()}, nil
}

// Open opens the file. The returned *os.File is closed by the caller.
func (s *LocalSource) Open(_ context.Context) (io.ReadCloser, Info, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, Info{}, classify(err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, Info{}, fmt.Errorf("failed to stat %s: %w", s.path, err)
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, Info{}, fmt.Errorf("%s is a directory: %w", s.path, ErrNotFound)
	}

	return f, Info{Name: st.Name(), Size: st.Size(), ModTime: st.ModTime()}, nil
}

func classify(err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("failed to read artifact: %w", err)
}

// BucketSource reads the artifact from an object storage bucket.
type BucketSource struct {
	client storage.Client
	bucket string
	key    string
}

// NewBucketSource creates a source for object key in bucket.
func NewBucketSource(client storage.Client, bucket, key string) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, key: key}
}

// Location returns bucket/key.
func (s *BucketSource) Location() string {
	return s.bucket + "/" + s.key
}

// Verify checks that the bucket itself exists. It is not part of the download
// path, where a missing bucket is simply a missing artifact.
func (s *BucketSource) Verify(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketMissing, s.bucket)
	}
	return nil
}

// Stat looks the object up without downloading it.
func (s *BucketSource) Stat(ctx context.Context) (Info, error) {
	obj, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotFound, s.Location())
		}
		return Info{}, fmt.Errorf("failed to stat %s: %w", s.Location(), err)
	}
	return Info{Name: path.Base(s.key), Size: obj.Size, ModTime: obj.LastModified}, nil
}

// Open stats the object for its size, then streams it.
func (s *BucketSource) Open(ctx context.Context) (io.ReadCloser, Info, error) {
	info, err := s.Stat(ctx)
	if err != nil {
		return nil, Info{}, err
	}

	rc, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, Info{}, fmt.Errorf("%w: %s", ErrNotFound, s.Location())
		}
		return nil, Info{}, fmt.Errorf("failed to get %s: %w", s.Location(), err)
	}
	return rc, info, nil
}
