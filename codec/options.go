package codec

import (
	"github.com/arloliu/numser/errs"
	"github.com/arloliu/numser/internal/options"
	"github.com/arloliu/numser/internal/pool"
)

// minBufferSize is the largest element width, the smallest chunk that can
// hold a whole element of any type.
const minBufferSize = 8

const (
	// maxPreallocElems caps the capacity reserved up front for a flat result.
	maxPreallocElems = 1 << 20
	// maxPreallocSeqs caps the capacity reserved up front for a nested result.
	maxPreallocSeqs = 1 << 16
)

// Config holds the settings of a codec call.
type Config struct {
	// BufferSize is the staging chunk size in bytes.
	BufferSize int
}

// Option configures a codec call.
type Option = options.Option[*Config]

// WithBufferSize sets the staging chunk size in bytes.
//
// The default is 64 KiB. The size must be at least 8 so a chunk can hold
// one element of any type; each call rounds it down to a whole number of
// elements.
func WithBufferSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < minBufferSize {
			return errs.Newf(errs.UnknownError, "configure", "buffer size %d is below minimum %d", n, minBufferSize)
		}
		c.BufferSize = n

		return nil
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{BufferSize: pool.StagingBufferSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// chunkBytes returns the staging chunk for elements of elemSize bytes.
func (c *Config) chunkBytes(elemSize int) int {
	return c.BufferSize - c.BufferSize%elemSize
}
