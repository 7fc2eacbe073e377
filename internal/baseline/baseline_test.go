package baseline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() []byte {
	return bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 64)
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := testData()

	t.Run("zstd", func(t *testing.T) {
		compressed, err := Zstd{}.Compress(data)
		require.NoError(t, err)
		decoder, err := zstd.NewReader(nil)
		require.NoError(t, err)
		defer decoder.Close()
		out, err := decoder.DecodeAll(compressed, nil)
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("s2", func(t *testing.T) {
		compressed, err := S2{}.Compress(data)
		require.NoError(t, err)
		out, err := s2.Decode(nil, compressed)
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})

	t.Run("lz4", func(t *testing.T) {
		compressed, err := LZ4{}.Compress(data)
		require.NoError(t, err)
		out := make([]byte, len(data))
		n, err := lz4.UncompressBlock(compressed, out)
		require.NoError(t, err)
		assert.Equal(t, data, out[:n])
	})
}

func TestLZ4_Empty(t *testing.T) {
	compressed, err := LZ4{}.Compress(nil)
	require.NoError(t, err)
	assert.Empty(t, compressed)
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"zstd", "S2", "Lz4"} {
		c, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(name), c.Name())
	}

	_, err := Lookup("brotli")
	assert.ErrorIs(t, err, ErrUnknownCodec)

	_, err = LookupAll([]string{"zstd", "gzip"})
	assert.ErrorIs(t, err, ErrUnknownCodec)

	codecs, err := LookupAll([]string{"lz4", "zstd"})
	require.NoError(t, err)
	assert.Equal(t, []Codec{LZ4{}, Zstd{}}, codecs)
}

func TestMeasure(t *testing.T) {
	data := testData()
	originalBits := uint64(len(data)) * 8

	ms, err := Measure(data, originalBits, All()...)
	require.NoError(t, err)
	require.Len(t, ms, 3)
	for _, m := range ms {
		assert.Equal(t, originalBits, m.OriginalBits)
		assert.Less(t, m.EncodedBits, originalBits, "%s did not compress repetitive input", m.Codec)
		assert.Greater(t, m.Ratio, 50.0)
		assert.Zero(t, m.EncodedBits%8)
	}
	assert.Equal(t, "zstd", ms[0].Codec)
	assert.Equal(t, "s2", ms[1].Codec)
	assert.Equal(t, "lz4", ms[2].Codec)
}

func TestMeasure_Empty(t *testing.T) {
	ms, err := Measure(nil, 0, LZ4{})
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, Measurement{Codec: "lz4"}, ms[0])
}
