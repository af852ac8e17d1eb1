package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emersonbque13/bookcode/codec"
	"github.com/emersonbque13/bookcode/model"
	"github.com/emersonbque13/bookcode/normalize"
)

func testBundle() Bundle {
	return Bundle{
		BookText: "O gato subiu no telhado.\nA lua estava cheia.\n\nO cão ladrou a noite toda.",
		Mode:     model.ParagraphLineWord,
		Policy:   normalize.PolicyFoldAccents,
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	compressions := map[string]CompressionType{
		"none": CompressionNone,
		"lz4":  CompressionLZ4,
		"zstd": CompressionZSTD,
	}

	for name, compression := range compressions {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, testBundle(), Options{Compression: compression}))

			got, err := Read(&buf)
			require.NoError(t, err)
			assert.Equal(t, testBundle(), got)
		})
	}
}

func TestSnapshot_CodecByName(t *testing.T) {
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, testBundle(), Options{Codec: c}))

			got, err := Read(&buf)
			require.NoError(t, err)
			assert.Equal(t, testBundle(), got)
		})
	}
}

func TestSnapshot_CompressionPaysOff(t *testing.T) {
	bundle := Bundle{
		BookText: strings.Repeat("o gato subiu no telhado e desceu do telhado ", 200),
		Mode:     model.LineWord,
	}

	var plain, packed bytes.Buffer
	require.NoError(t, Write(&plain, bundle, Options{Compression: CompressionNone}))
	require.NoError(t, Write(&packed, bundle, Options{Compression: CompressionZSTD}))
	assert.Less(t, packed.Len(), plain.Len())

	got, err := Read(&packed)
	require.NoError(t, err)
	assert.Equal(t, bundle, got)
}

func TestSnapshot_IncompressiblePayloadStoredRaw(t *testing.T) {
	// A tiny bundle compresses badly; the writer must fall back to storing
	// the payload uncompressed and the reader must still round-trip it.
	bundle := Bundle{BookText: "x", Mode: model.LineWord}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, bundle, Options{Compression: CompressionLZ4}))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, bundle, got)
}

func TestSnapshot_InvalidMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testBundle(), Options{}))

	data := buf.Bytes()
	data[0] ^= 0xff

	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestSnapshot_ChecksumMismatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testBundle(), Options{}))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xff

	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestSnapshot_UnknownCodec(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testBundle(), Options{}))

	// Codec name starts right after the fixed header (16 bytes + 2-byte
	// length prefix).
	data := buf.Bytes()
	data[18] = 'x'

	_, err := Read(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrUnknownCodec)
}

func TestSnapshot_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testBundle(), Options{}))

	_, err := Read(bytes.NewReader(buf.Bytes()[:10]))
	assert.Error(t, err)
}

func TestSnapshot_InvalidCompressionOption(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testBundle(), Options{Compression: CompressionType(9)})
	assert.ErrorIs(t, err, ErrInvalidCompression)
}
