package pod

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/poddump/internal/observability"
	"github.com/danmuck/poddump/internal/pod/registry"
	"github.com/danmuck/poddump/internal/pod/render"
	"github.com/danmuck/poddump/internal/pod/tag"
)

// Options controls decoding and the output line format.
type Options struct {
	// Strict rejects end markers with a length and payloads on void blocks.
	Strict bool
	// ShowNames prints the block name before its value.
	ShowNames bool
	// Indent is written once per nesting level.
	Indent string
	// MaxDepth bounds block nesting; zero or less uses DefaultMaxDepth.
	MaxDepth int
	// MaxPayloadBytes bounds a single payload; zero uses DefaultMaxPayloadBytes.
	MaxPayloadBytes uint64
	Render          render.Options
}

const (
	DefaultMaxDepth        = 1024
	DefaultMaxPayloadBytes = 256 << 20
)

func DefaultOptions() Options {
	return Options{
		Strict:          true,
		Indent:          "\t",
		MaxDepth:        DefaultMaxDepth,
		MaxPayloadBytes: DefaultMaxPayloadBytes,
	}
}

// Decoder writes one line per block read from a POD stream.
type Decoder struct {
	r       *countingReader
	w       io.Writer
	opts    Options
	metrics *observability.DecodeMetrics
	eof     bool
}

func NewDecoder(r io.Reader, w io.Writer, opts Options) *Decoder {
	opts.Render.Lenient = !opts.Strict
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxPayloadBytes == 0 {
		opts.MaxPayloadBytes = DefaultMaxPayloadBytes
	}
	return &Decoder{r: &countingReader{r: r}, w: w, opts: opts}
}

// WithMetrics records every decoded block into m.
func (d *Decoder) WithMetrics(m *observability.DecodeMetrics) *Decoder {
	d.metrics = m
	return d
}

// Offset returns the number of input bytes consumed.
func (d *Decoder) Offset() int64 {
	return d.r.n
}

// Block decodes one block and all of its children at depth. It reports
// false when it read an end marker or the input ended cleanly.
func (d *Decoder) Block(depth int) (bool, error) {
	start := d.r.n
	h, err := tag.ReadHeader(d.r)
	if err == io.EOF {
		if depth > 0 && !d.eof {
			log.Warn().Int("depth", depth).Int64("offset", start).Msg("pod: input ended inside open block")
		}
		d.eof = true
		return false, nil
	}
	if err != nil {
		return false, d.fail(start, 0, depth, err)
	}

	if h.IsEnd() {
		if h.Length != 0 {
			if d.opts.Strict {
				return false, d.fail(start, h.Block(), depth,
					fmt.Errorf("%w: end marker carries length %d", ErrMalformed, h.Length))
			}
			log.Warn().Uint32("id", h.Block()).Uint32("length", h.Length).Msg("pod: ignoring end marker length")
		}
		return false, nil
	}

	if depth > d.opts.MaxDepth {
		return false, d.fail(start, h.ID, depth, ErrTooDeep)
	}

	payload, err := tag.ReadPayload(d.r, h, d.opts.MaxPayloadBytes)
	if err != nil {
		return false, d.fail(start, h.ID, depth, err)
	}
	log.Debug().Uint32("id", h.ID).Uint32("length", h.Length).Int("depth", depth).Msg("pod: block")

	desc := registry.Lookup(h.ID)
	value, err := render.Value(desc, payload, d.opts.Render)
	if err != nil {
		return false, d.fail(start, h.ID, depth, err)
	}
	d.metrics.RecordBlock(registry.FamilyName(desc.ID), desc.Encoding.String(), len(payload), desc.IsUnknown())

	if err := d.writeLine(depth, h.ID, desc, value); err != nil {
		return false, d.fail(start, h.ID, depth, err)
	}

	for {
		more, err := d.Block(depth + 1)
		if err != nil {
			return false, err
		}
		if !more {
			break
		}
	}
	return true, nil
}

func (d *Decoder) writeLine(depth int, id uint32, desc registry.Descriptor, value string) error {
	var b strings.Builder
	b.WriteString(strings.Repeat(d.opts.Indent, depth))
	fmt.Fprintf(&b, "%4d: ", id)
	if d.opts.ShowNames {
		b.WriteString(desc.Name)
		b.WriteString(": ")
	}
	b.WriteString(value)
	b.WriteByte('\n')
	_, err := io.WriteString(d.w, b.String())
	return err
}

// Dump decodes top-level blocks until the input ends cleanly.
func (d *Decoder) Dump() error {
	for !d.eof {
		offset := d.r.n
		more, err := d.Block(0)
		if err != nil {
			return err
		}
		if !more && !d.eof {
			log.Warn().Int64("offset", offset).Msg("pod: stray end marker at top level")
		}
	}
	return nil
}

// Dump writes the text dump of the POD stream r to w.
func Dump(r io.Reader, w io.Writer, opts Options) error {
	return DumpWithMetrics(r, w, opts, nil)
}

// DumpWithMetrics is Dump with per-block metrics recorded into m.
func DumpWithMetrics(r io.Reader, w io.Writer, opts Options, m *observability.DecodeMetrics) error {
	bw := bufio.NewWriter(w)
	err := NewDecoder(r, bw, opts).WithMetrics(m).Dump()
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("%w: %w", ErrIO, ferr)
	}
	return err
}

func (d *Decoder) fail(offset int64, id uint32, depth int, err error) error {
	return &DecodeError{Offset: offset, ID: id, Depth: depth, Err: classify(err)}
}

func classify(err error) error {
	switch {
	case errors.Is(err, ErrMalformed), errors.Is(err, ErrTooDeep):
		return err
	case errors.Is(err, tag.ErrShortHeader), errors.Is(err, tag.ErrShortPayload):
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	case errors.Is(err, tag.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
	case errors.Is(err, render.ErrVoidPayload):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
