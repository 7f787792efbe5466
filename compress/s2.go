package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor measures S2 block compression in its "better" mode, which
// trades some speed for ratio and suits numeric payloads with repeated
// byte patterns.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bound := s2.MaxEncodedLen(len(data))
	if bound < 0 {
		return nil, fmt.Errorf("s2: payload of %d bytes is too large", len(data))
	}

	return s2.EncodeBetter(make([]byte, bound), data), nil
}

func (S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}

	return s2.Decode(make([]byte, n), data)
}
