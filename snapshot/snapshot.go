package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/emersonbque13/bookcode/codec"
	"github.com/emersonbque13/bookcode/model"
	"github.com/emersonbque13/bookcode/normalize"
)

const (
	// MagicNumber identifies book snapshot files (ASCII: "BKC0")
	MagicNumber = 0x424b4330
	// Version is the current file format version (v1.0.0)
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrChecksumMismatch   = errors.New("checksum mismatch")
	ErrUnknownCodec       = errors.New("unknown codec")
)

// Bundle is everything needed to rebuild a codec instance: the book text and
// the settings it was indexed with. The index itself is never persisted, it
// is rebuilt from the text on load so the two can never drift apart.
type Bundle struct {
	BookText string           `json:"book_text"`
	Mode     model.Mode       `json:"mode"`
	Policy   normalize.Policy `json:"policy"`
}

// fileHeader is the fixed-size header at the start of every snapshot.
// The codec name and payload follow as length-prefixed sections.
type fileHeader struct {
	Magic       uint32
	Version     uint32
	Compression uint8
	Padding     [3]byte
	Checksum    uint32 // CRC32 of the (compressed) payload
}

// Options control how a snapshot is written.
type Options struct {
	Codec       codec.Codec
	Compression CompressionType
}

// Write serializes the bundle to w. A nil Codec in opts falls back to
// codec.Default; the zero Options value writes an uncompressed snapshot.
func Write(w io.Writer, bundle Bundle, opts Options) error {
	c := opts.Codec
	if c == nil {
		c = codec.Default
	}
	if !opts.Compression.Valid() {
		return ErrInvalidCompression
	}

	raw, err := c.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal bundle: %w", err)
	}

	payload, err := compressPayload(raw, opts.Compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	header := fileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(opts.Compression),
		Checksum:    crc32.ChecksumIEEE(payload),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writeString(w, c.Name()); err != nil {
		return fmt.Errorf("write codec name: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(payload))); err != nil {
		return fmt.Errorf("write payload size: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

// Read deserializes a bundle from r. The header is self-describing, so no
// options are needed: the codec is looked up by name and the compression
// type is taken from the header.
func Read(r io.Reader) (Bundle, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return Bundle{}, fmt.Errorf("read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return Bundle{}, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return Bundle{}, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	compression := CompressionType(header.Compression)
	if !compression.Valid() {
		return Bundle{}, fmt.Errorf("%w: got %d", ErrInvalidCompression, header.Compression)
	}

	codecName, err := readString(r)
	if err != nil {
		return Bundle{}, fmt.Errorf("read codec name: %w", err)
	}
	c, ok := codec.ByName(codecName)
	if !ok {
		return Bundle{}, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	var payloadSize uint32
	if err := binary.Read(r, binary.LittleEndian, &payloadSize); err != nil {
		return Bundle{}, fmt.Errorf("read payload size: %w", err)
	}
	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Bundle{}, fmt.Errorf("read payload: %w", err)
	}

	if sum := crc32.ChecksumIEEE(payload); sum != header.Checksum {
		return Bundle{}, fmt.Errorf("%w: got 0x%08x, want 0x%08x", ErrChecksumMismatch, sum, header.Checksum)
	}

	raw, err := decompressPayload(payload, compression)
	if err != nil {
		return Bundle{}, fmt.Errorf("decompress payload: %w", err)
	}

	var bundle Bundle
	if err := c.Unmarshal(raw, &bundle); err != nil {
		return Bundle{}, fmt.Errorf("unmarshal bundle: %w", err)
	}
	return bundle, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var size uint16
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
