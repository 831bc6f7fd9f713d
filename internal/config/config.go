package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/poddump/internal/pod"
	"github.com/danmuck/poddump/internal/pod/source"
)

// DumpConfig is the resolved poddump configuration.
type DumpConfig struct {
	Strict          bool
	ShowNames       bool
	FixedPoint      bool
	Digest          bool
	Annotate        bool
	Stats           bool
	Indent          string
	MaxDepth        int
	MaxPayloadBytes uint64
	Compression     source.Detection
}

type fileConfig struct {
	Strict          bool   `toml:"strict"`
	ShowNames       bool   `toml:"show_names"`
	FixedPoint      bool   `toml:"fixed_point"`
	Digest          bool   `toml:"digest"`
	Annotate        bool   `toml:"annotate"`
	Stats           bool   `toml:"stats"`
	Indent          string `toml:"indent"`
	MaxDepth        int    `toml:"max_depth"`
	MaxPayloadBytes int64  `toml:"max_payload_bytes"`
	Compression     string `toml:"compression"`
}

func Default() DumpConfig {
	opts := pod.DefaultOptions()
	return DumpConfig{
		Strict:          opts.Strict,
		Indent:          opts.Indent,
		MaxDepth:        opts.MaxDepth,
		MaxPayloadBytes: opts.MaxPayloadBytes,
	}
}

// Load overlays the keys defined in the TOML file at path onto Default.
func Load(path string) (DumpConfig, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return DumpConfig{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return DumpConfig{}, fmt.Errorf("config unknown keys (%s): %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("show_names") {
		cfg.ShowNames = raw.ShowNames
	}
	if meta.IsDefined("fixed_point") {
		cfg.FixedPoint = raw.FixedPoint
	}
	if meta.IsDefined("digest") {
		cfg.Digest = raw.Digest
	}
	if meta.IsDefined("annotate") {
		cfg.Annotate = raw.Annotate
	}
	if meta.IsDefined("stats") {
		cfg.Stats = raw.Stats
	}
	if meta.IsDefined("indent") {
		cfg.Indent = raw.Indent
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("max_payload_bytes") {
		if raw.MaxPayloadBytes <= 0 {
			return DumpConfig{}, fmt.Errorf("config max_payload_bytes must be positive (%s)", path)
		}
		cfg.MaxPayloadBytes = uint64(raw.MaxPayloadBytes)
	}
	if meta.IsDefined("compression") {
		detect, err := source.ParseDetection(raw.Compression)
		if err != nil {
			return DumpConfig{}, fmt.Errorf("config invalid (%s): %w", path, err)
		}
		cfg.Compression = detect
	}

	if err := Validate(cfg); err != nil {
		return DumpConfig{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg DumpConfig) error {
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive")
	}
	if cfg.MaxPayloadBytes == 0 {
		return fmt.Errorf("max_payload_bytes must be positive")
	}
	if strings.ContainsAny(cfg.Indent, "\r\n") {
		return fmt.Errorf("indent must not contain line breaks")
	}
	return nil
}

// Options converts cfg into decoder options.
func (c DumpConfig) Options() pod.Options {
	opts := pod.DefaultOptions()
	opts.Strict = c.Strict
	opts.ShowNames = c.ShowNames
	opts.Indent = c.Indent
	opts.MaxDepth = c.MaxDepth
	opts.MaxPayloadBytes = c.MaxPayloadBytes
	opts.Render.FixedPoint = c.FixedPoint
	opts.Render.Digest = c.Digest
	opts.Render.Annotate = c.Annotate
	return opts
}
