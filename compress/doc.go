// Package compress measures how well numser payloads would compress.
//
// numser never compresses what it persists. This package exists for
// diagnostics: the inspect package runs a payload through each algorithm
// and reports the resulting sizes, which tells an operator whether wrapping
// a stream in an external compressor is worth it.
//
// # Algorithms
//
//   - None: identity, the baseline
//   - Zstd: klauspost/compress/zstd, best ratio, moderate speed
//   - S2: klauspost/compress/s2, balanced
//   - LZ4: pierrec/lz4/v4 block format, fastest decompression
//
// # Usage
//
//	stats, err := compress.Measure(format.CompressionZstd, payload)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %.1f%% smaller\n", stats.Algorithm, stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool managed encoders and
// are safe for concurrent use.
package compress
