// Copyright 2018 The ZikiChombo Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the settings shared by the wav commands.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"zikichombo.org/wavutil/relay"
	"zikichombo.org/wavutil/wav"
)

// MaxPayload is the default payload size cap, 524288 blocks of 4096 bytes.
const MaxPayload = 524288 * relay.DefaultChunkSize

type Config struct {
	Tags    TagsConfig     `toml:"tags"`
	Relay   RelayConfig    `toml:"relay"`
	Silence SilenceConfig  `toml:"silence"`
	Outputs []OutputConfig `toml:"outputs"`
}

// TagsConfig holds the 4 byte tags a header must carry.
type TagsConfig struct {
	Riff string `toml:"riff"`
	Wave string `toml:"wave"`
	Fmt  string `toml:"fmt"`
	Data string `toml:"data"`
}

type RelayConfig struct {
	ChunkSize  int   `toml:"chunk_size"`
	MaxPayload int64 `toml:"max_payload"` // 0 disables the cap
}

// SilenceConfig bounds the silence window as sums of fractions of the
// sample count, for example "1/2+1/100".
type SilenceConfig struct {
	Start relay.Bound `toml:"start"`
	End   relay.Bound `toml:"end"`
}

// OutputConfig describes one derived file.
type OutputConfig struct {
	Name      string `toml:"name"`
	Transform string `toml:"transform"` // header transform, see wav.TransformFor
	Silence   bool   `toml:"silence"`   // silence the payload window
}

// Default returns the settings used when no file is given.  Outputs is
// empty; each command supplies its own.
func Default() *Config {
	return &Config{
		Tags: TagsConfig{
			Riff: string(wav.RIFF[:]),
			Wave: string(wav.WAVE[:]),
			Fmt:  string(wav.Fmt[:]),
			Data: string(wav.Data[:]),
		},
		Relay: RelayConfig{
			ChunkSize:  relay.DefaultChunkSize,
			MaxPayload: MaxPayload,
		},
		Silence: SilenceConfig{
			Start: relay.DefaultSilenceStart,
			End:   relay.DefaultSilenceEnd,
		},
	}
}

// Load reads a TOML file over the defaults.  An empty path yields
// Default().  Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	log.Printf("Config: loading configuration from %s", path)
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	for _, k := range md.Undecoded() {
		log.Printf("Config: ignoring unknown key %s", k)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	log.Printf("Config: configuration loaded successfully")
	return cfg, nil
}

// WavTags converts the tag strings for wav.NewValidator.
func (c *Config) WavTags() (wav.Tags, error) {
	var tags wav.Tags
	fields := []struct {
		key string
		val string
		dst *wav.FourCC
	}{
		{"tags.riff", c.Tags.Riff, &tags.Riff},
		{"tags.wave", c.Tags.Wave, &tags.Wave},
		{"tags.fmt", c.Tags.Fmt, &tags.Fmt},
		{"tags.data", c.Tags.Data, &tags.Data},
	}
	for _, f := range fields {
		fcc, err := wav.ParseFourCC(f.val)
		if err != nil {
			return tags, errors.Wrapf(err, "invalid %s", f.key)
		}
		*f.dst = fcc
	}
	return tags, nil
}
