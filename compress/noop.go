package compress

// NoOpCompressor is the baseline: its output is a copy of its input, so
// its stats report a ratio of exactly 1.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

func (NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return clone(data), nil
}

func (NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return clone(data), nil
}

func clone(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	return append([]byte(nil), data...)
}
