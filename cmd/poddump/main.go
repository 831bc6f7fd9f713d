/*
Binary poddump prints the block structure of a POD scene file.

Usage:

	poddump [flags] scene.pod

Each block is printed on its own line, indented one tab per nesting level.
With -decompress, gzip and zstd compressed inputs are decompressed
transparently; otherwise every input is read as a plain stream.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/poddump/internal/config"
	"github.com/danmuck/poddump/internal/logging"
	"github.com/danmuck/poddump/internal/observability"
	"github.com/danmuck/poddump/internal/pod"
	"github.com/danmuck/poddump/internal/pod/source"
)

var errUsage = errors.New("usage")

func main() {
	logging.ConfigureRuntime()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	err := dump(args, stdout, stderr)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func dump(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("poddump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a poddump TOML config")
	names := fs.Bool("names", false, "print block names before values")
	lenient := fs.Bool("lenient", false, "tolerate malformed end markers and void payloads")
	fixed := fs.Bool("fixed", false, "decode float payloads as 16.16 fixed point")
	digest := fs.Bool("digest", false, "print an xxh64 digest for oversized opaque payloads")
	annotate := fs.Bool("annotate", false, "annotate known enum values")
	stats := fs.Bool("stats", false, "print per-family record counts to stderr")
	decompress := fs.Bool("decompress", false, "decompress gzip and zstd inputs detected by signature")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: poddump [flags] <filename>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "names":
			cfg.ShowNames = *names
		case "lenient":
			cfg.Strict = !*lenient
		case "fixed":
			cfg.FixedPoint = *fixed
		case "digest":
			cfg.Digest = *digest
		case "annotate":
			cfg.Annotate = *annotate
		case "stats":
			cfg.Stats = *stats
		case "decompress":
			cfg.Compression = source.Plain
			if *decompress {
				cfg.Compression = source.Auto
			}
		}
	})

	path := fs.Arg(0)
	in, err := source.Open(path, cfg.Compression)
	if err != nil {
		return err
	}
	defer in.Close()
	log.Debug().Str("path", path).Stringer("compression", in.Compression).Msg("poddump: input opened")

	var metrics *observability.DecodeMetrics
	if cfg.Stats {
		metrics = observability.NewDecodeMetrics()
	}
	if err := pod.DumpWithMetrics(in, stdout, cfg.Options(), metrics); err != nil {
		return err
	}
	if metrics != nil {
		return printStats(stderr, metrics)
	}
	return nil
}

func printStats(w io.Writer, m *observability.DecodeMetrics) error {
	summary, err := m.Summary()
	if err != nil {
		return err
	}
	for _, row := range summary {
		fmt.Fprintf(w, "%-10s %d\n", row.Family, row.Records)
	}
	return nil
}
