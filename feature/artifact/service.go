package artifact

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
)

// Service resolves the artifact for download requests.
type Service struct {
	source Source
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new artifact service.
func NewService(source Source, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		cfg:    cfg,
		logger: logger,
	}
}

// Open returns the artifact stream. A missing artifact wraps ErrNotFound.
func (s *Service) Open(ctx context.Context) (io.ReadCloser, Info, error) {
	return s.source.Open(ctx)
}

// verifier is implemented by sources whose container can be missing
// independently of the artifact, such as a bucket.
type verifier interface {
	Verify(ctx context.Context) error
}

// Check reports whether the artifact is currently available. A missing
// container is returned as an error (ErrBucketMissing), a missing artifact as
// ok == false.
func (s *Service) Check(ctx context.Context) (Info, bool, error) {
	if v, ok := s.source.(verifier); ok {
		if err := v.Verify(ctx); err != nil {
			return Info{}, false, err
		}
	}

	info, err := s.source.Stat(ctx)
	if errors.Is(err, ErrNotFound) {
		return Info{}, false, nil
	}
	if err != nil {
		return Info{}, false, err
	}
	return info, true, nil
}

// Routes returns the configured route aliases.
func (s *Service) Routes() []string {
	return s.cfg.Routes
}

// Location describes the configured source.
func (s *Service) Location() string {
	return s.source.Location()
}
