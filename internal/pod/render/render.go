package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/danmuck/poddump/internal/pod/registry"
)

// MaxDumpBytes is the largest opaque payload rendered byte by byte.
const MaxDumpBytes = 256

const wordLen = 4

var ErrVoidPayload = errors.New("render: payload on void block")

// Options adjusts value rendering. The zero value renders the plain format.
type Options struct {
	// FixedPoint decodes float words as signed 16.16 fixed point.
	FixedPoint bool
	// Digest appends an xxh64 digest to oversized opaque payloads.
	Digest bool
	// Annotate appends symbolic names to known custom enums.
	Annotate bool
	// Lenient renders a payload on a void block as opaque bytes instead of failing.
	Lenient bool
}

// Value renders payload according to d's encoding. It never reads past
// the payload and only fails for a non-empty void payload.
func Value(d registry.Descriptor, payload []byte, opts Options) (string, error) {
	var b strings.Builder
	switch d.Encoding {
	case registry.Void:
		if len(payload) != 0 {
			if !opts.Lenient {
				return "", ErrVoidPayload
			}
			writeOpaque(&b, payload, opts)
		}
	case registry.UInt32:
		if len(payload) != wordLen {
			writeOpaque(&b, payload, opts)
			break
		}
		b.WriteString(strconv.FormatUint(uint64(word(payload, 0)), 10))
	case registry.SInt32:
		if len(payload) != wordLen {
			writeOpaque(&b, payload, opts)
			break
		}
		b.WriteString(strconv.FormatInt(int64(int32(word(payload, 0))), 10))
	case registry.Float:
		if len(payload) != wordLen {
			writeOpaque(&b, payload, opts)
			break
		}
		b.WriteString(floatWord(word(payload, 0), opts.FixedPoint))
	case registry.String:
		if i := bytes.IndexByte(payload, 0); i >= 0 {
			payload = payload[:i]
		}
		b.Write(payload)
	case registry.RGB, registry.RGBA, registry.FloatArray:
		writeWords(&b, payload, func(w uint32) string {
			return floatWord(w, opts.FixedPoint)
		})
	case registry.SInt32Array:
		writeWords(&b, payload, func(w uint32) string {
			return strconv.FormatInt(int64(int32(w)), 10)
		})
	case registry.UInt32Array:
		writeWords(&b, payload, func(w uint32) string {
			return strconv.FormatUint(uint64(w), 10)
		})
	case registry.Custom:
		if len(payload) == wordLen {
			v := word(payload, 0)
			b.WriteString(strconv.FormatUint(uint64(v), 10))
			if opts.Annotate {
				if name, ok := Annotation(d.ID, v); ok {
					b.WriteString(" (")
					b.WriteString(name)
					b.WriteByte(')')
				}
			}
			break
		}
		writeOpaque(&b, payload, opts)
	default:
		writeOpaque(&b, payload, opts)
	}
	return b.String(), nil
}

func word(p []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(p[i*wordLen:])
}

// writeWords renders every whole word of p as "< a, b, >". A trailing
// partial word is ignored.
func writeWords(b *strings.Builder, p []byte, format func(uint32) string) {
	b.WriteString("< ")
	for i := 0; i < len(p)/wordLen; i++ {
		b.WriteString(format(word(p, i)))
		b.WriteString(", ")
	}
	b.WriteByte('>')
}

func writeOpaque(b *strings.Builder, p []byte, opts Options) {
	if len(p) > MaxDumpBytes {
		if opts.Digest {
			fmt.Fprintf(b, "< %d bytes xxh64=%016x >", len(p), xxhash.Sum64(p))
			return
		}
		fmt.Fprintf(b, "< %d bytes >", len(p))
		return
	}
	b.WriteString("< ")
	for _, c := range p {
		fmt.Fprintf(b, "%02x ", c)
	}
	b.WriteByte('>')
}

func floatWord(w uint32, fixed bool) string {
	if fixed {
		return Float(float64(int32(w)) / 65536)
	}
	return Float(float64(math.Float32frombits(w)))
}

// Float formats f with six significant digits in the shortest of plain or
// exponent notation.
func Float(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
