// Package numser provides a minimal binary format for persisting homogeneous
// numeric slices, and slices of slices, so they can be reconstructed exactly.
//
// # Core Features
//
//   - Closed element type set: int8 through int64, uint8 through uint64,
//     float32 and float64, enforced at compile time
//   - Fixed 24-byte header with signature, version and element size checks
//     that reject foreign or mismatched data before any payload is read
//   - Streaming reads and writes through a bounded 64 KiB staging buffer
//   - Nested streams: a slice of slices as back-to-back flat streams
//   - Status taxonomy returned by value, never panics on bad input
//
// # Basic Usage
//
//	values := []int32{-1000, -999, 998, 999}
//	if err := numser.SerializeFile("left.vec", values); err != nil {
//	    log.Fatal(numser.StatusOf(err))
//	}
//
//	loaded, err := numser.DeserializeFile[int32]("left.vec")
//	if err != nil {
//	    log.Fatal(numser.StatusString(numser.StatusOf(err)))
//	}
//
// Reading a stream with the wrong element width is rejected:
//
//	_, err := numser.DeserializeFile[int64]("left.vec")
//	errors.Is(err, numser.SizeMismatchError) // true
//
// # Portability
//
// The header count and every element are stored in host byte order with no
// endianness tag. Streams round-trip exactly on one host, or between hosts
// sharing byte order and float representation; other exchanges are not
// supported.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package. The section package exposes the header, errs the status
// taxonomy, and inspect a type-agnostic stream inspector.
package numser

import (
	"io"

	"github.com/arloliu/numser/codec"
	"github.com/arloliu/numser/errs"
	"github.com/arloliu/numser/format"
)

// Number is the closed set of element types numser serializes.
type Number = format.Number

// Status is the outcome of a numser operation.
type Status = errs.Status

// Outcomes reported by StatusOf.
const (
	OK                = errs.OK
	WriteError        = errs.WriteError
	ReadError         = errs.ReadError
	SignatureError    = errs.SignatureError
	VersionError      = errs.VersionError
	SizeMismatchError = errs.SizeMismatchError
	UnknownError      = errs.UnknownError
)

// Serialize writes values to w as a flat stream.
func Serialize[T Number](w io.Writer, values []T, opts ...codec.Option) error {
	return codec.Serialize(w, values, opts...)
}

// Deserialize reads a flat stream of T from r.
func Deserialize[T Number](r io.Reader, opts ...codec.Option) ([]T, error) {
	return codec.Deserialize[T](r, opts...)
}

// SerializeNested writes values to w as a nested stream.
func SerializeNested[T Number](w io.Writer, values [][]T, opts ...codec.Option) error {
	return codec.SerializeNested(w, values, opts...)
}

// DeserializeNested reads a nested stream of T from r.
func DeserializeNested[T Number](r io.Reader, opts ...codec.Option) ([][]T, error) {
	return codec.DeserializeNested[T](r, opts...)
}

// SerializeFile writes values to the file at path as a flat stream.
func SerializeFile[T Number](path string, values []T, opts ...codec.Option) error {
	return codec.SerializeFile(path, values, opts...)
}

// DeserializeFile reads a flat stream of T from the file at path.
func DeserializeFile[T Number](path string, opts ...codec.Option) ([]T, error) {
	return codec.DeserializeFile[T](path, opts...)
}

// SerializeNestedFile writes values to the file at path as a nested stream.
func SerializeNestedFile[T Number](path string, values [][]T, opts ...codec.Option) error {
	return codec.SerializeNestedFile(path, values, opts...)
}

// DeserializeNestedFile reads a nested stream of T from the file at path.
func DeserializeNestedFile[T Number](path string, opts ...codec.Option) ([][]T, error) {
	return codec.DeserializeNestedFile[T](path, opts...)
}

// StatusOf maps an error returned by this module to its Status.
func StatusOf(err error) Status {
	return errs.StatusOf(err)
}

// StatusString returns the human-readable form of s for diagnostics.
// Invalid values report the UnknownError text.
func StatusString(s Status) string {
	return s.String()
}
