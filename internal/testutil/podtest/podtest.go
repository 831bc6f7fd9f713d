// Package podtest builds little-endian POD streams for tests.
package podtest

import (
	"encoding/binary"
	"math"

	"github.com/danmuck/poddump/internal/pod/tag"
)

// Header encodes a raw tag header.
func Header(id, length uint32) []byte {
	buf := make([]byte, tag.HeaderLen)
	binary.LittleEndian.PutUint32(buf[0:4], id)
	binary.LittleEndian.PutUint32(buf[4:8], length)
	return buf
}

// Record encodes a start tag followed by its payload.
func Record(id uint32, payload []byte) []byte {
	return append(Header(id, uint32(len(payload))), payload...)
}

// End encodes the end marker closing block id.
func End(id uint32) []byte {
	return Header(id|tag.EndBit, 0)
}

// Block encodes id with payload, its children, and the closing end marker.
func Block(id uint32, payload []byte, children ...[]byte) []byte {
	out := Record(id, payload)
	for _, c := range children {
		out = append(out, c...)
	}
	return append(out, End(id)...)
}

// Stream concatenates parts.
func Stream(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func Uint32s(vs ...uint32) []byte {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return buf
}

func Int32s(vs ...int32) []byte {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	return buf
}

func Float32s(vs ...float32) []byte {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// CString returns s with a trailing null byte.
func CString(s string) []byte {
	return append([]byte(s), 0)
}
