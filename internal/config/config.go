/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads the YAML configuration of the discreteuniform tool.
package config

import (
	"encoding/hex"
	"log/slog"
	"os"

	"github.com/kparrigan/mathnet-numerics/control"
	"github.com/kparrigan/mathnet-numerics/random"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	SourceSystem  = "system"
	SourceCrypto  = "crypto"
	SourceSalsa20 = "salsa20"
)

// Config describes a discrete uniform distribution and how to
// draw from it.
type Config struct {
	Lower int `yaml:"lower"`
	Upper int `yaml:"upper"`

	// Count is the number of draws.
	Count int `yaml:"count"`
	// Source is one of system, crypto or salsa20.
	Source string `yaml:"source"`
	// Seed of the system source; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	// Key of the salsa20 source, 64 hex characters.
	Key string `yaml:"key"`
	// Rate limits draws per second; 0 means unlimited.
	Rate float64 `yaml:"rate"`

	CheckParameters bool `yaml:"checkParameters"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Lower:           0,
		Upper:           9,
		Count:           10,
		Source:          SourceSystem,
		CheckParameters: true,
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(content, conf); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks the fields that do not depend on the
// distribution itself.
func (c *Config) Validate() error {
	if c.Count < 0 {
		return errors.Errorf("count should be non-negative, got %d", c.Count)
	}
	if c.Rate < 0 {
		return errors.Errorf("rate should be non-negative, got %v", c.Rate)
	}
	switch c.Source {
	case SourceSystem, SourceCrypto, SourceSalsa20:
		return nil
	default:
		return errors.Errorf("unknown source: %s", c.Source)
	}
}

// LogValue omits the salsa20 key.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("lower", c.Lower),
		slog.Int("upper", c.Upper),
		slog.Int("count", c.Count),
		slog.String("source", c.Source),
		slog.Int64("seed", c.Seed),
		slog.Float64("rate", c.Rate),
		slog.Bool("checkParameters", c.CheckParameters),
	)
}

// Control returns the settings matching CheckParameters.
func (c *Config) Control() *control.Settings {
	return &control.Settings{CheckDistributionParameters: c.CheckParameters}
}

// NewSource builds the configured random source.
func (c *Config) NewSource() (random.Source, error) {
	switch c.Source {
	case SourceSystem:
		if c.Seed == 0 {
			return random.Default(), nil
		}
		return random.NewSystem(c.Seed), nil
	case SourceCrypto:
		return random.NewCrypto(), nil
	case SourceSalsa20:
		raw, err := hex.DecodeString(c.Key)
		if err != nil {
			return nil, errors.Wrap(err, "salsa20 key is not hex")
		}
		if len(raw) != 32 {
			return nil, errors.Errorf("salsa20 key should have 32 bytes, got %d", len(raw))
		}
		var key [32]byte
		copy(key[:], raw)
		return random.NewSalsa20(&key), nil
	default:
		return nil, errors.Errorf("unknown source: %s", c.Source)
	}
}
