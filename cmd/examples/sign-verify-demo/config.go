// Copyright (C) 2025 SAGE-X Project
//
// This file is part of httpsig.
//
// httpsig is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// httpsig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with httpsig.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config holds the demo server's listen address, default signature
// label and covered components, and verification policy. It is loaded
// from an optional TOML file; unset fields keep their defaults.
type Config struct {
	ListenAddr       string   `toml:"listen_addr"`
	SignatureLabel   string   `toml:"signature_label"`
	Components       []string `toml:"components"`
	MaxAgeSeconds    int      `toml:"max_age_seconds"`
	ToleranceSeconds int      `toml:"tolerance_seconds"`
	RequiredFields   []string `toml:"required_fields"`
}

func defaultConfig() Config {
	return Config{
		ListenAddr:       "127.0.0.1:0",
		SignatureLabel:   "sig1",
		Components:       []string{"@method", "@authority", "@path", "content-type"},
		MaxAgeSeconds:    300,
		ToleranceSeconds: 5,
		RequiredFields:   []string{"@method", "@path"},
	}
}

// loadConfig overlays a TOML file (if path is non-empty) onto the
// defaults. Undecoded keys are warned about, not treated as fatal,
// matching the "warn on undecoded keys" convention this demo borrows
// from the rest of the example corpus.
func loadConfig(path string, log zerolog.Logger) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Warn().Strs("keys", keys).Str("path", path).Msg("undecoded config keys")
	}
	return cfg, nil
}
