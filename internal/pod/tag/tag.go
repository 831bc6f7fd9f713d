package tag

import (
	"encoding/binary"
	"errors"
	"io"
)

// HeaderLen is the size of an encoded tag header: identifier then length,
// both little-endian uint32.
const HeaderLen = 8

// EndBit marks an identifier as the end of the enclosing block.
const EndBit uint32 = 0x80000000

var (
	ErrShortHeader     = errors.New("tag: short header")
	ErrShortPayload    = errors.New("tag: short payload")
	ErrPayloadTooLarge = errors.New("tag: payload too large")
)

// Header is one decoded tag header.
type Header struct {
	ID     uint32
	Length uint32
}

// IsEnd reports whether h closes the current block.
func (h Header) IsEnd() bool {
	return h.ID&EndBit != 0
}

// Block returns the identifier with the end bit cleared.
func (h Header) Block() uint32 {
	return h.ID &^ EndBit
}

func DecodeHeader(b []byte) (Header, error) {
	if len(b) != HeaderLen {
		return Header{}, ErrShortHeader
	}
	return Header{
		ID:     binary.LittleEndian.Uint32(b[0:4]),
		Length: binary.LittleEndian.Uint32(b[4:8]),
	}, nil
}

// ReadHeader reads one header from r. A clean end of input before any header
// byte is reported as io.EOF; a header cut short is ErrShortHeader.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderLen]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return Header{}, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return Header{}, ErrShortHeader
		default:
			return Header{}, err
		}
	}
	return DecodeHeader(buf[:])
}

// ReadPayload reads exactly h.Length bytes from r. Lengths above max are
// rejected before any allocation; max of zero disables the check.
func ReadPayload(r io.Reader, h Header, max uint64) ([]byte, error) {
	if max > 0 && uint64(h.Length) > max {
		return nil, ErrPayloadTooLarge
	}
	if h.Length == 0 {
		return nil, nil
	}
	payload := make([]byte, h.Length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortPayload
		}
		return nil, err
	}
	return payload, nil
}
