package codec

import (
	"io"
	"slices"

	"github.com/arloliu/numser/endian"
	"github.com/arloliu/numser/errs"
	"github.com/arloliu/numser/format"
	"github.com/arloliu/numser/internal/pool"
	"github.com/arloliu/numser/section"
)

// Serialize writes values to w as a flat stream.
//
// The header is written first, then the element bytes in their original
// order, staged through a buffer of at most the configured size.
//
// Parameters:
//   - w: Destination stream
//   - values: Elements to write; not retained after return
//   - opts: Optional settings (see WithBufferSize)
//
// Returns:
//   - error: WriteError on the first failed write, nil on success
func Serialize[T format.Number](w io.Writer, values []T, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	return serialize(w, values, cfg)
}

func serialize[T format.Number](w io.Writer, values []T, cfg *Config) error {
	elemSize := format.SizeOf[T]()

	if err := writeHeader(w, elemSize, len(values)); err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	chunk := cfg.chunkBytes(elemSize)
	buf := pool.GetStagingBuffer(chunk)
	defer pool.PutStagingBuffer(buf)

	engine := endian.GetNativeEngine()
	perChunk := chunk / elemSize

	for start := 0; start < len(values); start += perChunk {
		end := min(start+perChunk, len(values))
		staged := buf.Slice(0, (end-start)*elemSize)

		format.PutValues(staged, values[start:end], engine)

		if _, err := w.Write(staged); err != nil {
			return errs.New(errs.WriteError, "write payload", err)
		}
	}

	return nil
}

func writeHeader(w io.Writer, elemSize, count int) error {
	hdr := section.NewHeader(uint8(elemSize), uint64(count))
	if _, err := w.Write(hdr.Bytes()); err != nil {
		return errs.New(errs.WriteError, "write header", err)
	}

	return nil
}

// Deserialize reads a flat stream of T from r.
//
// Exactly the header and count*SizeOf[T]() payload bytes are consumed, so
// r is left positioned at whatever follows the stream.
//
// Parameters:
//   - r: Source stream positioned at a header boundary
//   - opts: Optional settings (see WithBufferSize)
//
// Returns:
//   - []T: The decoded elements, exactly count of them, in stored order
//   - error: ReadError, SignatureError, VersionError or SizeMismatchError
func Deserialize[T format.Number](r io.Reader, opts ...Option) ([]T, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return deserialize[T](r, cfg)
}

func deserialize[T format.Number](r io.Reader, cfg *Config) ([]T, error) {
	hdr, err := readHeader[T](r)
	if err != nil {
		return nil, err
	}

	total, err := hdr.PayloadSize()
	if err != nil {
		return nil, err
	}

	// hdr.Count fits in an int here since PayloadSize did not overflow.
	values := make([]T, 0, min(int(hdr.Count), maxPreallocElems))
	if total == 0 {
		return values, nil
	}

	elemSize := format.SizeOf[T]()
	chunk := cfg.chunkBytes(elemSize)
	buf := pool.GetStagingBuffer(chunk)
	defer pool.PutStagingBuffer(buf)

	engine := endian.GetNativeEngine()

	for read := 0; read < total; {
		n := min(total-read, chunk)
		staged := buf.Slice(0, n)

		if _, err := io.ReadFull(r, staged); err != nil {
			return nil, errs.New(errs.ReadError, "read payload", err)
		}
		read += n

		k := n / elemSize
		values = slices.Grow(values, k)
		values = values[:len(values)+k]
		format.GetValues(values[len(values)-k:], staged, engine)
	}

	return values, nil
}

// readHeader reads one header and validates it for T.
func readHeader[T format.Number](r io.Reader) (section.Header, error) {
	var raw [section.HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return section.Header{}, errs.New(errs.ReadError, "read header", err)
	}

	hdr, err := section.ParseHeader(raw[:])
	if err != nil {
		return section.Header{}, err
	}

	if err := hdr.Validate(uint8(format.SizeOf[T]())); err != nil {
		return section.Header{}, err
	}

	return hdr, nil
}
