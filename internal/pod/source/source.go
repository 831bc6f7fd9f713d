package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression identifies how an input file is wrapped.
type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

var (
	ErrInvalidCompressedData = errors.New("source: invalid compressed data")
	ErrUnknownDetection      = errors.New("source: unknown compression mode")
)

// Detection selects whether an input is sniffed for a compression frame.
type Detection int

const (
	// Plain reads every input as an uncompressed stream.
	Plain Detection = iota
	// Auto decompresses inputs starting with a gzip or zstd signature.
	Auto
)

func (d Detection) String() string {
	if d == Auto {
		return "auto"
	}
	return "none"
}

// ParseDetection maps a config value ("none", "auto") to a Detection.
func ParseDetection(raw string) (Detection, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return Plain, nil
	case "auto":
		return Auto, nil
	default:
		return Plain, fmt.Errorf("%w: %q", ErrUnknownDetection, raw)
	}
}

// Input is an opened POD stream. Close releases every underlying resource.
type Input struct {
	io.Reader
	Compression Compression
	closers     []func() error
}

func (in *Input) Close() error {
	var errs []error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	in.closers = nil
	return errors.Join(errs...)
}

// Open opens path for reading. With Auto, gzip and zstd files are
// decompressed transparently.
func Open(path string, detect Detection) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	in, err := NewInput(f, detect)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	in.closers = append([]func() error{f.Close}, in.closers...)
	return in, nil
}

// NewInput wraps r for reading. With Auto it sniffs r for a compression
// frame; a plain POD stream may start with the same bytes, so Plain never
// looks.
func NewInput(r io.Reader, detect Detection) (*Input, error) {
	br := bufio.NewReader(r)
	if detect != Auto {
		return &Input{Reader: br, Compression: None}, nil
	}
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCompressedData, err)
		}
		return &Input{Reader: zr, Compression: Gzip, closers: []func() error{zr.Close}}, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCompressedData, err)
		}
		return &Input{Reader: zr, Compression: Zstd, closers: []func() error{func() error {
			zr.Close()
			return nil
		}}}, nil
	default:
		return &Input{Reader: br, Compression: None}, nil
	}
}
