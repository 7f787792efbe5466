package format

import (
	"fmt"
	"strings"
)

// CompressionType labels a general-purpose compression algorithm.
//
// numser never compresses what it persists. These values only name the
// estimates computed by the compress and inspect packages.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota + 1
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

var compressionNames = map[CompressionType]string{
	CompressionNone: "None",
	CompressionZstd: "Zstd",
	CompressionS2:   "S2",
	CompressionLZ4:  "LZ4",
}

func (c CompressionType) String() string {
	if name, ok := compressionNames[c]; ok {
		return name
	}

	return "Unknown"
}

// ParseCompressionType maps a case-insensitive algorithm name such as
// "zstd" back to its CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	for c, n := range compressionNames {
		if strings.EqualFold(n, name) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown compression type %q", name)
}
