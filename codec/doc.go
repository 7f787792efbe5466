// Package codec serializes homogeneous numeric slices to byte streams and back.
//
// # Flat streams
//
// A flat stream is a 24-byte header followed by the raw element bytes:
//
//	err := codec.Serialize(w, []int32{-1, 0, 1})
//	values, err := codec.Deserialize[int32](r)
//
// Deserialize rejects, in order: a short header (ReadError), a foreign
// signature (SignatureError), an unsupported version (VersionError), a
// stream written for a different element width (SizeMismatchError) and a
// short payload (ReadError). Every failure is an *errs.Error.
//
// # Nested streams
//
// A nested stream is an outer header whose count is the number of inner
// slices, followed by one complete flat stream per inner slice:
//
//	err := codec.SerializeNested(w, [][]float64{{1, 2}, {}, {3}})
//	rows, err := codec.DeserializeNested[float64](r)
//
// # Buffering
//
// Payload bytes move through a pooled staging buffer of 64 KiB (see
// WithBufferSize), so peak memory stays bounded for any slice length and
// slow sinks see steady chunked writes. Chunk boundaries are not recorded
// in the stream.
//
// # Byte order
//
// Elements and the header count are stored in host byte order. Streams are
// exact on the same host or on hosts sharing its byte order and float
// representation; anything else is unsupported.
//
// # Concurrency
//
// All calls are synchronous and blocking. A single stream must not be used
// by more than one call at a time; distinct streams may be used from
// different goroutines.
package codec
