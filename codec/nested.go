package codec

import (
	"io"

	"github.com/arloliu/numser/format"
)

// SerializeNested writes values to w as a nested stream.
//
// An outer header carrying len(values) is written, then each inner slice
// as a complete flat stream. The first failure is returned and nothing
// already written is rolled back.
func SerializeNested[T format.Number](w io.Writer, values [][]T, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	return serializeNested(w, values, cfg)
}

func serializeNested[T format.Number](w io.Writer, values [][]T, cfg *Config) error {
	if err := writeHeader(w, format.SizeOf[T](), len(values)); err != nil {
		return err
	}

	for _, inner := range values {
		if err := serialize(w, inner, cfg); err != nil {
			return err
		}
	}

	return nil
}

// DeserializeNested reads a nested stream of T from r.
//
// The outer header is validated like a flat header, then one flat stream
// is read per inner slice. On any failure the inner slices decoded so far
// are discarded and a nil result is returned.
func DeserializeNested[T format.Number](r io.Reader, opts ...Option) ([][]T, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return deserializeNested[T](r, cfg)
}

func deserializeNested[T format.Number](r io.Reader, cfg *Config) ([][]T, error) {
	hdr, err := readHeader[T](r)
	if err != nil {
		return nil, err
	}

	values := make([][]T, 0, min(hdr.Count, maxPreallocSeqs))
	for i := uint64(0); i < hdr.Count; i++ {
		inner, err := deserialize[T](r, cfg)
		if err != nil {
			return nil, err
		}
		values = append(values, inner)
	}

	return values, nil
}
