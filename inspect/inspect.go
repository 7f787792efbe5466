package inspect

import (
	"fmt"
	"io"

	"github.com/arloliu/numser/compress"
	"github.com/arloliu/numser/errs"
	"github.com/arloliu/numser/format"
	"github.com/arloliu/numser/internal/hash"
	"github.com/arloliu/numser/section"
)

// Layout classifies the bytes following the outer header.
type Layout uint8

const (
	LayoutUnknown Layout = iota
	LayoutFlat
	LayoutNested
	LayoutTruncated
)

func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "flat"
	case LayoutNested:
		return "nested"
	case LayoutTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Report describes one inspected stream.
type Report struct {
	Header         section.Header
	Layout         Layout
	TypeCandidates []string
	// InnerCounts holds the element count of every inner stream of a nested stream.
	InnerCounts []uint64
	// BodySize is the number of bytes after the outer header.
	BodySize int64
	// Oversized is set when the body exceeded the configured cap and was not fully read.
	Oversized bool
	// Digest is the xxHash64 of the body.
	Digest      uint64
	Compression []compress.CompressionStats
}

// Inspect reads a whole numser stream from r and reports on it.
//
// A short header is a ReadError; a foreign signature or unsupported version
// is reported as such. The stored element size is never a mismatch since
// no target type is given.
func Inspect(r io.Reader, opts ...Option) (*Report, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	var raw [section.HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, errs.New(errs.ReadError, "read header", err)
	}

	hdr, err := section.ParseHeader(raw[:])
	if err != nil {
		return nil, err
	}

	if err := hdr.Validate(hdr.ElemSize); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(r, cfg.MaxPayload+1))
	if err != nil {
		return nil, errs.New(errs.ReadError, "read body", err)
	}

	report := &Report{
		Header:         hdr,
		TypeCandidates: format.TypeNamesForSize(hdr.ElemSize),
	}

	if int64(len(body)) > cfg.MaxPayload {
		report.Oversized = true
		report.BodySize = cfg.MaxPayload
		body = body[:cfg.MaxPayload]
	} else {
		report.BodySize = int64(len(body))
		report.Layout, report.InnerCounts = classify(hdr, body)
	}

	report.Digest = hash.Sum(body)

	for _, algo := range cfg.Compression {
		stats, err := compress.Measure(algo, body)
		if err != nil {
			return nil, fmt.Errorf("inspect: %w", err)
		}
		report.Compression = append(report.Compression, stats)
	}

	return report, nil
}

func classify(hdr section.Header, body []byte) (Layout, []uint64) {
	flatSize, err := hdr.PayloadSize()
	if err == nil && flatSize == len(body) {
		return LayoutFlat, nil
	}

	if counts, ok := walkNested(hdr, body); ok {
		return LayoutNested, counts
	}

	if err != nil || len(body) < flatSize {
		return LayoutTruncated, nil
	}

	return LayoutUnknown, nil
}

// walkNested reports whether body is exactly hdr.Count well-formed inner
// streams with the outer element size.
func walkNested(hdr section.Header, body []byte) ([]uint64, bool) {
	// Every inner stream needs at least a header.
	if hdr.Count > uint64(len(body)/section.HeaderSize) {
		return nil, false
	}

	counts := make([]uint64, 0, hdr.Count)
	off := 0
	for range hdr.Count {
		inner, err := section.ParseHeader(body[off:])
		if err != nil || inner.Validate(hdr.ElemSize) != nil {
			return nil, false
		}
		off += section.HeaderSize

		size, err := inner.PayloadSize()
		if err != nil || size > len(body)-off {
			return nil, false
		}
		off += size
		counts = append(counts, inner.Count)
	}

	return counts, off == len(body)
}
