package pod

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danmuck/poddump/internal/observability"
	"github.com/danmuck/poddump/internal/pod/tag"
	"github.com/danmuck/poddump/internal/testutil/podtest"
	"github.com/danmuck/poddump/internal/testutil/testlog"
)

func dump(t *testing.T, in []byte, opts Options) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Dump(bytes.NewReader(in), &out, opts)
	return out.String(), err
}

func mustDump(t *testing.T, in []byte, opts Options) string {
	t.Helper()
	out, err := dump(t, in, opts)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	return out
}

func TestDumpEmptyStream(t *testing.T) {
	testlog.Start(t)
	if out := mustDump(t, nil, DefaultOptions()); out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestDumpNestedVoidBlocks(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(
		podtest.Record(1001, nil),
		podtest.Record(2010, nil),
		podtest.End(2010),
		podtest.Record(2011, nil),
		podtest.End(2011),
		podtest.End(1001),
	)
	want := "1001: \n\t2010: \n\t2011: \n"
	if out := mustDump(t, in, DefaultOptions()); out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestDumpScene(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(
		podtest.Block(1000, podtest.CString("AB.POD.2.0")),
		podtest.Block(1001, nil,
			podtest.Block(2000, podtest.Float32s(0, 0, 0.5)),
			podtest.Block(2002, podtest.Uint32s(1)),
			podtest.Block(2012, nil,
				podtest.Block(6000, podtest.Uint32s(3)),
				podtest.Block(6004, podtest.Uint32s(1, 2)),
			),
			podtest.Block(2013, nil,
				podtest.Block(5001, podtest.CString("root")),
				podtest.Block(5003, podtest.Int32s(-1)),
			),
		),
	)
	want := strings.Join([]string{
		"1000: AB.POD.2.0",
		"1001: ",
		"\t2000: < 0, 0, 0.5, >",
		"\t2002: 1",
		"\t2012: ",
		"\t\t6000: 3",
		"\t\t6004: < 1, 2, >",
		"\t2013: ",
		"\t\t5001: root",
		"\t\t5003: -1",
	}, "\n") + "\n"
	if out := mustDump(t, in, DefaultOptions()); out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestDumpIdentifierPadding(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(podtest.Block(7, []byte{0xff}), podtest.Block(123456, nil))
	want := "   7: < ff >\n123456: < >\n"
	if out := mustDump(t, in, DefaultOptions()); out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestDumpShowNames(t *testing.T) {
	testlog.Start(t)
	opts := DefaultOptions()
	opts.ShowNames = true
	in := podtest.Stream(
		podtest.Block(8001, podtest.Float32s(0.75)),
		podtest.Block(42, nil),
	)
	want := "8001: Field of View: 0.75\n  42: Unknown: < >\n"
	if out := mustDump(t, in, opts); out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestDumpCustomIndent(t *testing.T) {
	testlog.Start(t)
	opts := DefaultOptions()
	opts.Indent = "  "
	in := podtest.Block(1001, nil, podtest.Block(2017, podtest.Uint32s(30)))
	if out := mustDump(t, in, opts); out != "1001: \n  2017: 30\n" {
		t.Fatalf("got %q", out)
	}
}

func TestDumpTruncatedPayload(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(podtest.Header(5001, 10), []byte("abcd"))
	_, err := dump(t, in, DefaultOptions())
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %T", err)
	}
	if de.ID != 5001 || de.Offset != 0 || de.Depth != 0 {
		t.Fatalf("unexpected decode error: %+v", de)
	}
}

func TestDumpTruncatedHeader(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(podtest.Block(2017, podtest.Uint32s(30)), []byte{1, 2, 3})
	out, err := dump(t, in, DefaultOptions())
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if !errors.Is(err, tag.ErrShortHeader) {
		t.Fatalf("expected tag.ErrShortHeader in chain, got %v", err)
	}
	if out != "2017: 30\n" {
		t.Fatalf("output before the failure must be flushed, got %q", out)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Offset != 20 {
		t.Fatalf("unexpected decode error: %+v", de)
	}
}

func TestDumpMalformedEndMarker(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(
		podtest.Record(1001, nil),
		podtest.Header(1001|tag.EndBit, 4),
		podtest.Block(2017, podtest.Uint32s(25)),
	)
	_, err := dump(t, in, DefaultOptions())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("strict: expected ErrMalformed, got %v", err)
	}

	opts := DefaultOptions()
	opts.Strict = false
	out, err := dump(t, in, opts)
	if err != nil {
		t.Fatalf("lenient: %v", err)
	}
	if out != "1001: \n2017: 25\n" {
		t.Fatalf("lenient got %q", out)
	}
}

func TestDumpVoidPayload(t *testing.T) {
	testlog.Start(t)
	in := podtest.Block(1001, []byte{0xde, 0xad})
	_, err := dump(t, in, DefaultOptions())
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("strict: expected ErrMalformed, got %v", err)
	}
	opts := DefaultOptions()
	opts.Strict = false
	if out := mustDump(t, in, opts); out != "1001: < de ad >\n" {
		t.Fatalf("lenient got %q", out)
	}
}

func TestDumpMissingEndMarkersAtEOF(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(
		podtest.Record(1001, nil),
		podtest.Record(2012, nil),
		podtest.Record(6000, podtest.Uint32s(8)),
	)
	want := "1001: \n\t2012: \n\t\t6000: 8\n"
	if out := mustDump(t, in, DefaultOptions()); out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestDumpStrayTopLevelEndMarker(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(
		podtest.End(1001),
		podtest.Block(2017, podtest.Uint32s(60)),
	)
	if out := mustDump(t, in, DefaultOptions()); out != "2017: 60\n" {
		t.Fatalf("got %q", out)
	}
}

func TestDumpMaxDepth(t *testing.T) {
	testlog.Start(t)
	opts := DefaultOptions()
	opts.MaxDepth = 2
	ok := podtest.Block(1001, nil, podtest.Block(2012, nil, podtest.Block(6000, podtest.Uint32s(1))))
	if _, err := dump(t, ok, opts); err != nil {
		t.Fatalf("depth 2 must decode: %v", err)
	}
	deep := podtest.Block(1001, nil, podtest.Block(2012, nil, podtest.Block(6006, nil, podtest.Block(9000, podtest.Uint32s(1)))))
	_, err := dump(t, deep, opts)
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("expected ErrTooDeep, got %v", err)
	}
}

func TestDumpPayloadLimit(t *testing.T) {
	testlog.Start(t)
	opts := DefaultOptions()
	opts.MaxPayloadBytes = 8
	_, err := dump(t, podtest.Header(6014, 0xfffffff0), opts)
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestDumpZeroLimitsUseDefaults(t *testing.T) {
	testlog.Start(t)
	opts := DefaultOptions()
	opts.MaxDepth = 0
	opts.MaxPayloadBytes = 0

	_, err := dump(t, podtest.Header(6014, 0xfffffff0), opts)
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}

	var deep []byte
	for i := 0; i < DefaultMaxDepth+8; i++ {
		deep = append(deep, podtest.Header(1001, 0)...)
	}
	_, err = dump(t, deep, opts)
	if !errors.Is(err, ErrTooDeep) {
		t.Fatalf("expected ErrTooDeep, got %v", err)
	}
}

type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(p []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(p, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestDumpIOError(t *testing.T) {
	testlog.Start(t)
	boom := errors.New("disk on fire")
	r := &failingReader{data: podtest.Header(1000, 8), err: boom}
	var out bytes.Buffer
	err := Dump(r, &out, DefaultOptions())
	if !errors.Is(err, ErrIO) || !errors.Is(err, boom) {
		t.Fatalf("expected ErrIO wrapping the read error, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestDumpWriteError(t *testing.T) {
	testlog.Start(t)
	err := Dump(bytes.NewReader(podtest.Block(2017, podtest.Uint32s(1))), failingWriter{}, DefaultOptions())
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestBlockReportsStructure(t *testing.T) {
	testlog.Start(t)
	in := podtest.Stream(podtest.Block(1001, nil), podtest.End(1002))
	var out bytes.Buffer
	d := NewDecoder(bytes.NewReader(in), &out, DefaultOptions())
	more, err := d.Block(0)
	if err != nil || !more {
		t.Fatalf("first block: more=%v err=%v", more, err)
	}
	more, err = d.Block(0)
	if err != nil || more {
		t.Fatalf("end marker: more=%v err=%v", more, err)
	}
	if d.Offset() != int64(len(in)) {
		t.Fatalf("offset = %d, want %d", d.Offset(), len(in))
	}
	more, err = d.Block(0)
	if err != nil || more {
		t.Fatalf("eof: more=%v err=%v", more, err)
	}
}

func TestDumpWithMetrics(t *testing.T) {
	testlog.Start(t)
	m := observability.NewDecodeMetrics()
	in := podtest.Block(1001, nil,
		podtest.Block(2012, nil, podtest.Block(6000, podtest.Uint32s(4))),
		podtest.Block(31337, []byte{1, 2, 3}),
	)
	var out bytes.Buffer
	if err := DumpWithMetrics(bytes.NewReader(in), &out, DefaultOptions(), m); err != nil {
		t.Fatalf("dump: %v", err)
	}
	summary, err := m.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	got := map[string]uint64{}
	for _, row := range summary {
		got[row.Family] = row.Records
	}
	if got["global"] != 1 || got["scene"] != 1 || got["mesh"] != 1 || got["unknown"] != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	n, err := testutil.GatherAndCount(m.Registry(), "poddump_decode_unknown_records_total")
	if err != nil || n != 1 {
		t.Fatalf("expected one unknown counter series, got %d (%v)", n, err)
	}
}
