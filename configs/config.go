/*
 *  Copyright 2020 KardiaChain
 *  This file is part of the go-kardia library.
 *
 *  The go-kardia library is free software: you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation, either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  The go-kardia library is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 *  GNU Lesser General Public License for more details.
 *
 *  You should have received a copy of the GNU Lesser General Public License
 *  along with the go-kardia library. If not, see <http://www.gnu.org/licenses/>.
 */

// Package configs holds the settings of the fraction console and the code
// to load them from YAML or TOML files.
package configs

import (
	"github.com/pkg/errors"

	"github.com/kardiachain/fracsh/lib/log"
)

const (
	EngineJS  = "js"
	EngineCEL = "cel"

	DefaultEngine    = EngineJS
	DefaultPrompt    = "> "
	DefaultCacheSize = 128
)

var (
	ErrUnknownEngine    = errors.New("unknown engine")
	ErrInvalidCacheSize = errors.New("cache size must be positive")
	ErrEmptyPrompt      = errors.New("prompt must not be empty")
)

// Config is the console configuration. Fields keep their Go names in both
// file formats.
type Config struct {
	Engine    string `yaml:"Engine"`    // Script dialect, "js" or "cel"
	Prompt    string `yaml:"Prompt"`    // Input prompt prefix
	LogLevel  string `yaml:"LogLevel"`  // Level of the stderr logger
	Banner    bool   `yaml:"Banner"`    // Print the welcome message before reading input
	CacheSize int    `yaml:"CacheSize"` // Compiled programs kept by the cel engine
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine:    DefaultEngine,
		Prompt:    DefaultPrompt,
		LogLevel:  log.DefaultLevel,
		Banner:    true,
		CacheSize: DefaultCacheSize,
	}
}

// Validate checks the settings that cannot be corrected by defaults.
func (c *Config) Validate() error {
	switch c.Engine {
	case EngineJS, EngineCEL:
	default:
		return errors.Wrapf(ErrUnknownEngine, "%q", c.Engine)
	}
	if c.CacheSize <= 0 {
		return errors.Wrapf(ErrInvalidCacheSize, "got %d", c.CacheSize)
	}
	if c.Prompt == "" {
		return ErrEmptyPrompt
	}
	return nil
}
