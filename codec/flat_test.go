package codec

import (
	"bytes"
	"io"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numser/endian"
	"github.com/arloliu/numser/errs"
	"github.com/arloliu/numser/format"
	"github.com/arloliu/numser/internal/pool"
	"github.com/arloliu/numser/section"
)

func assertRoundTrip[T format.Number](t *testing.T, values []T, opts ...Option) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, values, opts...))
	require.Equal(t, section.HeaderSize+len(values)*format.SizeOf[T](), buf.Len())

	got, err := Deserialize[T](&buf, opts...)
	require.NoError(t, err)
	require.Len(t, got, len(values))
	require.Equal(t, len(values), len(got))
	for i := range values {
		require.Equal(t, values[i], got[i], "index %d", i)
	}
	require.Zero(t, buf.Len(), "payload must be fully consumed")
}

func randomValues[T format.Number](rng *rand.Rand, n int) []T {
	values := make([]T, n)
	for i := range values {
		switch any(values).(type) {
		case []float32:
			values[i] = T(rng.Float32()*2e6 - 1e6)
		case []float64:
			values[i] = T(rng.NormFloat64() * 1e12)
		default:
			values[i] = T(rng.Uint64())
		}
	}

	return values
}

func TestSerialize_RoundTrip_AllTypes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	t.Run("int8", func(t *testing.T) { assertRoundTrip(t, randomValues[int8](rng, 1000)) })
	t.Run("uint8", func(t *testing.T) { assertRoundTrip(t, randomValues[uint8](rng, 1000)) })
	t.Run("int16", func(t *testing.T) { assertRoundTrip(t, randomValues[int16](rng, 1000)) })
	t.Run("uint16", func(t *testing.T) { assertRoundTrip(t, randomValues[uint16](rng, 1000)) })
	t.Run("int32", func(t *testing.T) { assertRoundTrip(t, randomValues[int32](rng, 1000)) })
	t.Run("uint32", func(t *testing.T) { assertRoundTrip(t, randomValues[uint32](rng, 1000)) })
	t.Run("int64", func(t *testing.T) { assertRoundTrip(t, randomValues[int64](rng, 1000)) })
	t.Run("uint64", func(t *testing.T) { assertRoundTrip(t, randomValues[uint64](rng, 1000)) })
	t.Run("float32", func(t *testing.T) { assertRoundTrip(t, randomValues[float32](rng, 1000)) })
	t.Run("float64", func(t *testing.T) { assertRoundTrip(t, randomValues[float64](rng, 1000)) })
}

func TestSerialize_RoundTrip_Extremes(t *testing.T) {
	assertRoundTrip(t, []int8{math.MinInt8, -1, 0, 1, math.MaxInt8})
	assertRoundTrip(t, []uint16{0, math.MaxUint16})
	assertRoundTrip(t, []int32{math.MinInt32, math.MaxInt32})
	assertRoundTrip(t, []uint64{0, math.MaxUint64})
	assertRoundTrip(t, []int64{math.MinInt64, math.MaxInt64})
	assertRoundTrip(t, []float32{-math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(1))})
	assertRoundTrip(t, []float64{math.Inf(-1), -0.0, math.MaxFloat64})
}

func TestSerialize_RoundTrip_NaNBits(t *testing.T) {
	nan := math.Float64frombits(0x7FF8DEADBEEF0001)

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, []float64{nan, 1}))

	got, err := Deserialize[float64](&buf)
	require.NoError(t, err)
	require.Equal(t, uint64(0x7FF8DEADBEEF0001), math.Float64bits(got[0]))
	require.Equal(t, 1.0, got[1])
}

func TestSerialize_Empty(t *testing.T) {
	for _, values := range [][]int32{nil, {}} {
		var buf bytes.Buffer
		require.NoError(t, Serialize(&buf, values))
		require.Equal(t, section.NewHeader(4, 0).Bytes(), buf.Bytes())

		got, err := Deserialize[int32](&buf)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	}
}

func TestSerialize_WireFormat(t *testing.T) {
	engine := endian.GetNativeEngine()

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, []uint16{0x0102, 0xA0B0}))

	b := buf.Bytes()
	require.Len(t, b, 24+4)
	require.Equal(t, "NUMSER", string(b[0:6]))
	require.Equal(t, byte(0), b[6])
	require.Equal(t, byte(2), b[7])
	require.Equal(t, uint64(2), engine.Uint64(b[8:16]))
	require.Equal(t, make([]byte, 8), b[16:24])
	require.Equal(t, uint16(0x0102), engine.Uint16(b[24:26]))
	require.Equal(t, uint16(0xA0B0), engine.Uint16(b[26:28]))
}

// TestNetZero writes [-1000, 999] and [1000, -999], reads both back and
// checks their element-wise sum is zero everywhere.
func TestNetZero(t *testing.T) {
	const count = 2000

	left := make([]int32, count)
	right := make([]int32, count)
	for i := range count {
		left[i] = int32(-1000 + i)
		right[i] = int32(1000 - i)
	}

	var lbuf, rbuf bytes.Buffer
	require.NoError(t, Serialize(&lbuf, left))
	require.NoError(t, Serialize(&rbuf, right))

	gotLeft, err := Deserialize[int32](&lbuf)
	require.NoError(t, err)
	gotRight, err := Deserialize[int32](&rbuf)
	require.NoError(t, err)

	require.Len(t, gotLeft, count)
	require.Equal(t, left, gotLeft)
	require.Equal(t, right, gotRight)

	for i := range count {
		require.Zero(t, gotLeft[i]+gotRight[i], "index %d", i)
	}
}

func TestSerialize_BufferBoundaries(t *testing.T) {
	chunk := pool.StagingBufferSize

	// Byte-exact boundaries with 1-byte elements.
	for _, n := range []int{chunk - 1, chunk, chunk + 1, 2 * chunk, 3*chunk + 7} {
		values := make([]uint8, n)
		for i := range values {
			values[i] = uint8(i * 7)
		}
		assertRoundTrip(t, values)
	}

	// Element boundaries for wider types.
	for _, n := range []int{chunk/8 - 1, chunk / 8, chunk/8 + 1} {
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(i) * 1.5
		}
		assertRoundTrip(t, values)
	}
}

func TestSerialize_SmallBuffer(t *testing.T) {
	values := make([]int32, 101)
	for i := range values {
		values[i] = int32(i*i - 5000)
	}

	// 10 rounds down to 8 bytes, two int32 values per chunk.
	for _, size := range []int{8, 10, 12, 13, 400, 404} {
		assertRoundTrip(t, values, WithBufferSize(size))
	}

	// Different buffer sizes on each side never matter.
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, values, WithBufferSize(8)))
	got, err := Deserialize[int32](&buf, WithBufferSize(1<<20))
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestSerialize_ChunkedWrites(t *testing.T) {
	values := make([]int64, 20000) // 160000 bytes
	w := &recordingWriter{}

	require.NoError(t, Serialize(w, values))

	require.Equal(t, section.HeaderSize, w.sizes[0])
	require.Equal(t, []int{65536, 65536, 28928}, w.sizes[1:])
	require.Equal(t, section.HeaderSize+160000, w.total)
}

func TestSerialize_ChunkRoundedToElements(t *testing.T) {
	values := make([]int32, 10)
	w := &recordingWriter{}

	require.NoError(t, Serialize(w, values, WithBufferSize(14)))
	require.Equal(t, []int{24, 12, 12, 12, 4}, w.sizes)
}

func TestSerialize_InvalidBufferSize(t *testing.T) {
	var buf bytes.Buffer

	err := Serialize(&buf, []int8{1}, WithBufferSize(7))
	require.ErrorIs(t, err, errs.UnknownError)
	require.Zero(t, buf.Len(), "nothing may be written on a configuration error")

	_, err = Deserialize[int8](&buf, WithBufferSize(0))
	require.ErrorIs(t, err, errs.UnknownError)
}

func TestSerialize_WriteErrors(t *testing.T) {
	values := make([]int16, 50000) // 100000 payload bytes

	tests := []struct {
		name  string
		limit int
	}{
		{"header", 0},
		{"partial header", 10},
		{"first chunk", section.HeaderSize},
		{"second chunk", section.HeaderSize + pool.StagingBufferSize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Serialize(&failingWriter{limit: tt.limit}, values)
			require.ErrorIs(t, err, errs.WriteError)
			require.ErrorIs(t, err, errInjected)
			require.Equal(t, errs.WriteError, errs.StatusOf(err))
		})
	}
}

func TestDeserialize_SignatureRejectedBeforePayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, []int32{1, 2, 3}))

	data := buf.Bytes()
	copy(data, "NOTNUM")

	r := &countingReader{r: bytes.NewReader(data)}
	got, err := Deserialize[int32](r)
	require.Nil(t, got)
	require.ErrorIs(t, err, errs.SignatureError)
	require.Equal(t, section.HeaderSize, r.n, "payload must not be consulted")
}

func TestDeserialize_VersionRejected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, []int32{1}))

	data := buf.Bytes()
	data[6] = 1

	_, err := Deserialize[int32](bytes.NewReader(data))
	require.ErrorIs(t, err, errs.VersionError)
}

func TestDeserialize_SizeMismatch(t *testing.T) {
	for _, n := range []int{0, 1, 2, 1000} {
		var buf bytes.Buffer
		require.NoError(t, Serialize(&buf, make([]int32, n)))

		_, err := Deserialize[int64](&buf)
		require.ErrorIs(t, err, errs.SizeMismatchError, "count=%d", n)
	}

	// Count in the header is irrelevant, even an impossible one.
	hdr := section.NewHeader(4, math.MaxUint64)
	_, err := Deserialize[float64](bytes.NewReader(hdr.Bytes()))
	require.ErrorIs(t, err, errs.SizeMismatchError)

	// Same width, different type is accepted: only the size is checked.
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, []int32{-1}))
	got, err := Deserialize[uint32](&buf)
	require.NoError(t, err)
	require.Equal(t, []uint32{math.MaxUint32}, got)
}

func TestDeserialize_ShortHeader(t *testing.T) {
	_, err := Deserialize[int8](bytes.NewReader(nil))
	require.ErrorIs(t, err, errs.ReadError)
	require.ErrorIs(t, err, io.EOF)

	_, err = Deserialize[int8](bytes.NewReader([]byte("NUMSER\x00\x01")))
	require.ErrorIs(t, err, errs.ReadError)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDeserialize_Truncated(t *testing.T) {
	values := make([]uint32, 40000) // spans three 64 KiB chunks
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, values))
	full := buf.Bytes()

	for _, cut := range []int{1, 4, 1000, len(full) - section.HeaderSize - 1} {
		got, err := Deserialize[uint32](bytes.NewReader(full[:len(full)-cut]))
		require.Nil(t, got, "cut=%d", cut)
		require.ErrorIs(t, err, errs.ReadError, "cut=%d", cut)
	}

	// Header only, payload entirely missing.
	_, err := Deserialize[uint32](bytes.NewReader(full[:section.HeaderSize]))
	require.ErrorIs(t, err, errs.ReadError)
	require.ErrorIs(t, err, io.EOF)
}

func TestDeserialize_HugeCountFailsOnRead(t *testing.T) {
	hdr := section.NewHeader(8, 1<<40)
	data := append(hdr.Bytes(), make([]byte, 64)...)

	_, err := Deserialize[int64](bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ReadError)
}

func TestDeserialize_OverflowingPayloadSize(t *testing.T) {
	hdr := section.NewHeader(8, math.MaxUint64)

	_, err := Deserialize[uint64](bytes.NewReader(hdr.Bytes()))
	require.ErrorIs(t, err, errs.ReadError)
}

func TestDeserialize_StopsAtStreamEnd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, []int16{1, 2, 3}))
	require.NoError(t, Serialize(&buf, []int16{4}))
	buf.WriteString("tail")

	first, err := Deserialize[int16](&buf)
	require.NoError(t, err)
	require.Equal(t, []int16{1, 2, 3}, first)

	second, err := Deserialize[int16](&buf)
	require.NoError(t, err)
	require.Equal(t, []int16{4}, second)

	require.Equal(t, "tail", buf.String())
}

func TestSerialize_DoesNotRetainInput(t *testing.T) {
	values := []float32{1, 2, 3}

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, values))
	values[0] = 99

	got, err := Deserialize[float32](&buf)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2, 3}, got)
}
