package tjs

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the file form of the options:
//
//	[parse]
//	strict_keys = false
//	normalize_nfc = false
//
//	[decode]
//	disallow_unknown_fields = false
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Decode DecodeConfig `toml:"decode"`
}

type ParseConfig struct {
	StrictKeys   bool `toml:"strict_keys"`
	NormalizeNFC bool `toml:"normalize_nfc"`
}

type DecodeConfig struct {
	DisallowUnknownFields bool `toml:"disallow_unknown_fields"`
}

// ReadConfig decodes a TOML document. Unknown keys are an error so that
// typos do not silently fall back to defaults.
func ReadConfig(r io.Reader) (Config, error) {
	var cfg Config
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("tjs config: failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("tjs config: unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Options converts the config into functional options.
func (c Config) Options() []Option {
	return []Option{
		WithStrictKeys(c.Parse.StrictKeys),
		WithNFC(c.Parse.NormalizeNFC),
		WithDisallowUnknownFields(c.Decode.DisallowUnknownFields),
	}
}
