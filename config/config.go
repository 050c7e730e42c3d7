/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config holds the tunables shared by the quantifiers.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/apache/quantify-go/distance"
)

const (
	DefaultFolds     = 10
	DefaultWorkers   = 1
	DefaultThreshold = 0.5
	DefaultMaxIter   = 1000
	DefaultEpsilon   = 1e-6
	DefaultDistance  = distance.NameHellinger
)

var ErrInvalidConfig = errors.New("invalid config")

// Config configures cross-validation, the ACC operating point, the EM stopping
// rule and the HDy distance.
type Config struct {
	// Folds is the number of stratified cross-validation folds.
	Folds int `yaml:"folds"`
	// Workers > 1 runs folds concurrently.
	Workers int `yaml:"workers"`
	// Shuffle permutes instances within each class before assigning folds.
	Shuffle bool   `yaml:"shuffle"`
	Seed    uint64 `yaml:"seed"`
	// Threshold is the ACC decision threshold; it must be a point of the
	// 0.00, 0.01, ..., 1.00 grid.
	Threshold float64 `yaml:"threshold"`
	MaxIter   int     `yaml:"max_iter"`
	Epsilon   float64 `yaml:"epsilon"`
	Distance  string  `yaml:"distance"`

	Logger *slog.Logger `yaml:"-"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Folds:     DefaultFolds,
		Workers:   DefaultWorkers,
		Threshold: DefaultThreshold,
		MaxIter:   DefaultMaxIter,
		Epsilon:   DefaultEpsilon,
		Distance:  DefaultDistance,
	}
}

// Load reads YAML from r over the defaults and validates the result. Keys
// absent from the document keep their default values.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Folds < 2:
		return fmt.Errorf("%w: folds must be at least 2, got %d", ErrInvalidConfig, c.Folds)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case !(c.Threshold >= 0 && c.Threshold <= 1):
		return fmt.Errorf("%w: threshold must be in [0, 1], got %v", ErrInvalidConfig, c.Threshold)
	case c.MaxIter < 1:
		return fmt.Errorf("%w: max_iter must be at least 1, got %d", ErrInvalidConfig, c.MaxIter)
	case !(c.Epsilon > 0):
		return fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidConfig, c.Epsilon)
	}
	if _, err := distance.Get(c.Distance); err != nil {
		return err
	}
	return nil
}

// Log returns the configured logger, or the process default.
func (c Config) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
