// Package baseline measures how general-purpose compressors do on the same
// input, so Huffman statistics can be put next to real-world numbers.
package baseline

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownCodec is returned by Lookup for an unrecognized codec name.
var ErrUnknownCodec = errors.New("unknown codec")

// Codec compresses a block of bytes.
type Codec interface {
	Name() string
	Compress(data []byte) ([]byte, error)
}

// Zstd is the Zstandard codec at the default speed setting.
type Zstd struct{}

// S2 is the S2 (Snappy-compatible) block codec.
type S2 struct{}

// LZ4 is the LZ4 block codec.
type LZ4 struct{}

var (
	_ Codec = Zstd{}
	_ Codec = S2{}
	_ Codec = LZ4{}
)

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }

// Compress compresses data into a single zstd frame.
func (Zstd) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)
	return encoder.EncodeAll(data, nil), nil
}

// Name returns "s2".
func (S2) Name() string { return "s2" }

// Compress compresses data as one S2 block.
func (S2) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// Compress compresses data as one LZ4 block.  Empty input compresses to
// nothing.  Input that LZ4 cannot shrink is reported at its original size.
func (LZ4) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 {
		return data, nil
	}
	return dst[:n], nil
}

// All returns every supported codec.
func All() []Codec {
	return []Codec{Zstd{}, S2{}, LZ4{}}
}

// Lookup returns the codec with the given name, case-insensitively.
func Lookup(name string) (Codec, error) {
	for _, c := range All() {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// LookupAll resolves each name with Lookup.
func LookupAll(names []string) ([]Codec, error) {
	out := make([]Codec, 0, len(names))
	for _, name := range names {
		c, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Measurement records how one codec did on one input.
type Measurement struct {
	Codec        string  `json:"codec"`
	OriginalBits uint64  `json:"originalBits"`
	EncodedBits  uint64  `json:"encodedBits"`
	Ratio        float64 `json:"ratio"`
}

// Measure compresses data with each codec.  originalBits is the uncoded size
// every ratio is computed against, normally 8 bits per input character, so
// that the numbers line up with Huffman statistics for the same text.
func Measure(data []byte, originalBits uint64, codecs ...Codec) ([]Measurement, error) {
	out := make([]Measurement, 0, len(codecs))
	for _, c := range codecs {
		compressed, err := c.Compress(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name(), err)
		}
		m := Measurement{
			Codec:        c.Name(),
			OriginalBits: originalBits,
			EncodedBits:  uint64(len(compressed)) * 8,
		}
		if originalBits > 0 {
			m.Ratio = (1 - float64(m.EncodedBits)/float64(originalBits)) * 100
		}
		out = append(out, m)
	}
	return out, nil
}
