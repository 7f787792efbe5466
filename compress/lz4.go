package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxRatio bounds how far one compressed byte can expand. A frame
// claiming more is rejected before anything is allocated.
const lz4MaxRatio = 255

var errLZ4Length = errors.New("lz4: invalid length prefix")

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor measures LZ4 block compression.
//
// The raw block format does not record the decompressed size, so each
// compressed frame starts with the original length as a uvarint. The few
// prefix bytes are counted in the reported size.
type LZ4Compressor struct{}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress returns the length-prefixed LZ4 block of data.
//
// Returns:
//   - []byte: Compressed frame (nil if input is empty)
//   - error: Compression error if any
func (LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	prefix := binary.PutUvarint(dst, uint64(len(data)))

	n, err := lc.CompressBlock(data, dst[prefix:])
	if err != nil {
		return nil, err
	}

	return dst[:prefix+n], nil
}

// Decompress reverses Compress.
//
// Returns:
//   - []byte: Original data (nil if input is empty)
//   - error: errLZ4Length for a bad prefix, or the lz4 decoding error
func (LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, prefix := binary.Uvarint(data)
	if prefix <= 0 || size == 0 || size > uint64(len(data)-prefix)*lz4MaxRatio {
		return nil, errLZ4Length
	}

	dst := make([]byte, size)
	n, err := lz4.UncompressBlock(data[prefix:], dst)
	if err != nil {
		return nil, err
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4: decoded %d bytes, frame declares %d", n, size)
	}

	return dst, nil
}
