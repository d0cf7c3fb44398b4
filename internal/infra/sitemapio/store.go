// Where: internal/infra/sitemapio/store.go
// What: Loader and writer for site map documents.
// Why: One entry point for local files and object storage.
package sitemapio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/poruru-code/sitemap-cli/internal/domain/sitemap"
	"github.com/poruru-code/sitemap-cli/internal/infra/fileops"
)

const outputFileMode os.FileMode = 0o644

// ObjectStore reads and writes whole objects in a bucket.
type ObjectStore interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
}

// Store loads and saves documents. Objects may be nil when only local
// paths are used.
type Store struct {
	Objects ObjectStore
	Encode  EncodeOptions
	Logger  *slog.Logger
}

// NewStore returns a Store with the default JSON layout.
func NewStore(objects ObjectStore, logger *slog.Logger) *Store {
	return &Store{
		Objects: objects,
		Encode:  EncodeOptions{Indent: DefaultIndent},
		Logger:  logger,
	}
}

// Load reads and parses the document at location. Unreadable sources fail
// with ErrIO, malformed or non-object content with ErrParse.
func (s *Store) Load(ctx context.Context, location string) (*sitemap.Document, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}
	data, err := s.read(ctx, loc)
	if err != nil {
		return nil, err
	}
	s.logger().Debug("loaded site map", "location", loc.Raw, "bytes", len(data), "format", loc.Format)
	return Decode(data, loc)
}

// Save serializes doc and writes it to location, replacing existing
// content. Local writes are atomic. Failures wrap ErrIO.
func (s *Store) Save(ctx context.Context, location string, doc *sitemap.Document) error {
	loc, err := ParseLocation(location)
	if err != nil {
		return err
	}
	payload, err := Encode(doc, loc, s.Encode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := s.write(ctx, loc, payload); err != nil {
		return err
	}
	s.logger().Debug("saved site map", "location", loc.Raw, "bytes", len(payload), "format", loc.Format)
	return nil
}

func (s *Store) read(ctx context.Context, loc Location) ([]byte, error) {
	if loc.IsRemote() {
		if s.Objects == nil {
			return nil, fmt.Errorf("%w: object storage is not configured for %s", ErrIO, loc)
		}
		data, err := s.Objects.GetObject(ctx, loc.Bucket, loc.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrIO, loc, err)
		}
		return data, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, loc, err)
	}
	data, err := os.ReadFile(loc.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, loc, err)
	}
	return data, nil
}

func (s *Store) write(ctx context.Context, loc Location, payload []byte) error {
	if loc.IsRemote() {
		if s.Objects == nil {
			return fmt.Errorf("%w: object storage is not configured for %s", ErrIO, loc)
		}
		if err := s.Objects.PutObject(ctx, loc.Bucket, loc.Key, payload, contentType(loc)); err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrIO, loc, err)
		}
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, loc, err)
	}
	if err := fileops.WriteFileAtomic(loc.Key, payload, outputFileMode); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, loc, err)
	}
	return nil
}

func (s *Store) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}
