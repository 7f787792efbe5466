package section

import (
	"math"

	"github.com/arloliu/numser/endian"
	"github.com/arloliu/numser/errs"
)

// Header is the decoded form of the 24-byte stream header.
type Header struct {
	// Signature must equal the format magic for the stream to be accepted.
	Signature [SignatureSize]byte // byte offset 0-5
	// Version is the format version of the stream.
	Version uint8 // byte offset 6
	// ElemSize is the byte width of one payload element.
	ElemSize uint8 // byte offset 7
	// Count is the number of elements in a flat stream, or the number of
	// inner streams in a nested one.
	Count uint64 // byte offset 8-15
	// Reserved is written as zero and ignored on read.
	Reserved uint64 // byte offset 16-23
}

// NewHeader creates a header for count elements of elemSize bytes each,
// carrying the current signature and version.
func NewHeader(elemSize uint8, count uint64) Header {
	h := Header{
		Version:  Version,
		ElemSize: elemSize,
		Count:    count,
	}
	copy(h.Signature[:], Signature)

	return h
}

// AppendTo appends the wire form of the header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	engine := endian.GetNativeEngine()

	dst = append(dst, h.Signature[:]...)
	dst = append(dst, h.Version, h.ElemSize)
	dst = engine.AppendUint64(dst, h.Count)
	dst = engine.AppendUint64(dst, h.Reserved)

	return dst
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// Parse decodes the header from data.
//
// Parameters:
//   - data: Byte slice holding the header (must be at least HeaderSize bytes)
//
// Returns:
//   - error: ReadError if data is shorter than HeaderSize
//
// Parse does not validate the decoded fields; see Validate.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.Newf(errs.ReadError, "parse header", "got %d bytes, need %d", len(data), HeaderSize)
	}

	engine := endian.GetNativeEngine()

	copy(h.Signature[:], data[:SignatureSize])
	h.Version = data[versionOffset]
	h.ElemSize = data[elemSizeOffset]
	h.Count = engine.Uint64(data[countOffset:reservedOffset])
	h.Reserved = engine.Uint64(data[reservedOffset:HeaderSize])

	return nil
}

// ParseHeader decodes a Header from the first HeaderSize bytes of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Validate checks that the header describes a stream readable as elements
// of elemSize bytes.
//
// The checks run in a fixed order and the first failure wins:
//  1. SignatureError when the signature is not the format magic.
//  2. VersionError when the version is not Version.
//  3. SizeMismatchError when ElemSize differs from elemSize.
//
// Validate has no side effects and returns nil when the header is accepted.
func (h Header) Validate(elemSize uint8) error {
	if string(h.Signature[:]) != Signature {
		return errs.Newf(errs.SignatureError, "validate header", "signature %q", h.Signature[:])
	}

	if h.Version != Version {
		return errs.Newf(errs.VersionError, "validate header", "version %d, supported %d", h.Version, Version)
	}

	if h.ElemSize != elemSize {
		return errs.Newf(errs.SizeMismatchError, "validate header", "stored element size %d, target %d", h.ElemSize, elemSize)
	}

	return nil
}

// PayloadSize returns Count*ElemSize, the byte length of a flat payload.
//
// Returns:
//   - int: Payload size in bytes
//   - error: ReadError if the size does not fit in an int, since no such payload can be read
func (h Header) PayloadSize() (int, error) {
	if h.ElemSize == 0 || h.Count == 0 {
		return 0, nil
	}

	if h.Count > uint64(math.MaxInt)/uint64(h.ElemSize) {
		return 0, errs.Newf(errs.ReadError, "payload size", "%d elements of %d bytes overflow", h.Count, h.ElemSize)
	}

	return int(h.Count) * int(h.ElemSize), nil
}
