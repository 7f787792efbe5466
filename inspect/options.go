package inspect

import (
	"errors"

	"github.com/arloliu/numser/compress"
	"github.com/arloliu/numser/format"
	"github.com/arloliu/numser/internal/options"
)

// DefaultMaxPayload is the largest number of bytes read after the header.
const DefaultMaxPayload = 256 << 20

// Config holds the inspector settings.
type Config struct {
	MaxPayload  int64
	Compression []format.CompressionType
}

// Option configures Inspect.
type Option = options.Option[*Config]

// WithMaxPayload caps the bytes read after the header. Streams with more
// data are reported as LayoutUnknown with Oversized set.
func WithMaxPayload(n int64) Option {
	return options.New(func(c *Config) error {
		if n <= 0 {
			return errors.New("inspect: max payload must be positive")
		}
		c.MaxPayload = n

		return nil
	})
}

// WithCompression selects the compression estimates to compute. Passing no
// algorithms disables them.
func WithCompression(algos ...format.CompressionType) Option {
	return options.New(func(c *Config) error {
		for _, a := range algos {
			if _, err := compress.GetCodec(a); err != nil {
				return err
			}
		}
		c.Compression = algos

		return nil
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		MaxPayload: DefaultMaxPayload,
		Compression: []format.CompressionType{
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
		},
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
