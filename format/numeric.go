package format

import (
	"fmt"
	"math"

	"github.com/arloliu/numser/endian"
)

// Number is the closed set of element types numser serializes.
type Number interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// SizeOf returns the byte width of T.
func SizeOf[T Number]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// TypeName returns the Go name of T, e.g. "int32".
func TypeName[T Number]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// TypeNamesForSize lists the element types that are stored with the given
// element size. It returns nil for sizes no Number type has.
func TypeNamesForSize(size uint8) []string {
	switch size {
	case 1:
		return []string{"int8", "uint8"}
	case 2:
		return []string{"int16", "uint16"}
	case 4:
		return []string{"int32", "uint32", "float32"}
	case 8:
		return []string{"int64", "uint64", "float64"}
	default:
		return nil
	}
}

// PutValues packs src into dst using engine.
//
// len(dst) must be exactly len(src)*SizeOf[T](); PutValues panics otherwise.
func PutValues[T Number](dst []byte, src []T, engine endian.EndianEngine) {
	checkLayout[T](len(dst), len(src))

	switch s := any(src).(type) {
	case []int8:
		for i, v := range s {
			dst[i] = byte(v)
		}
	case []uint8:
		copy(dst, s)
	case []int16:
		for i, v := range s {
			engine.PutUint16(dst[i*2:], uint16(v))
		}
	case []uint16:
		for i, v := range s {
			engine.PutUint16(dst[i*2:], v)
		}
	case []int32:
		for i, v := range s {
			engine.PutUint32(dst[i*4:], uint32(v))
		}
	case []uint32:
		for i, v := range s {
			engine.PutUint32(dst[i*4:], v)
		}
	case []float32:
		for i, v := range s {
			engine.PutUint32(dst[i*4:], math.Float32bits(v))
		}
	case []int64:
		for i, v := range s {
			engine.PutUint64(dst[i*8:], uint64(v))
		}
	case []uint64:
		for i, v := range s {
			engine.PutUint64(dst[i*8:], v)
		}
	case []float64:
		for i, v := range s {
			engine.PutUint64(dst[i*8:], math.Float64bits(v))
		}
	}
}

// GetValues unpacks src into dst using engine.
//
// len(src) must be exactly len(dst)*SizeOf[T](); GetValues panics otherwise.
func GetValues[T Number](dst []T, src []byte, engine endian.EndianEngine) {
	checkLayout[T](len(src), len(dst))

	switch d := any(dst).(type) {
	case []int8:
		for i := range d {
			d[i] = int8(src[i])
		}
	case []uint8:
		copy(d, src)
	case []int16:
		for i := range d {
			d[i] = int16(engine.Uint16(src[i*2:]))
		}
	case []uint16:
		for i := range d {
			d[i] = engine.Uint16(src[i*2:])
		}
	case []int32:
		for i := range d {
			d[i] = int32(engine.Uint32(src[i*4:]))
		}
	case []uint32:
		for i := range d {
			d[i] = engine.Uint32(src[i*4:])
		}
	case []float32:
		for i := range d {
			d[i] = math.Float32frombits(engine.Uint32(src[i*4:]))
		}
	case []int64:
		for i := range d {
			d[i] = int64(engine.Uint64(src[i*8:]))
		}
	case []uint64:
		for i := range d {
			d[i] = engine.Uint64(src[i*8:])
		}
	case []float64:
		for i := range d {
			d[i] = math.Float64frombits(engine.Uint64(src[i*8:]))
		}
	}
}

func checkLayout[T Number](byteLen, elemLen int) {
	if byteLen != elemLen*SizeOf[T]() {
		panic(fmt.Sprintf("format: %d bytes cannot hold %d %s values", byteLen, elemLen, TypeName[T]()))
	}
}
