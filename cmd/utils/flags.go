// Copyright 2015 The go-kardia Authors
// This file is part of go-kardia.
//
// go-kardia is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-kardia is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-kardia. If not, see <http://www.gnu.org/licenses/>.

// Package utils contains internal helper functions for fracsh commands.
package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/kardiachain/fracsh/configs"
	"github.com/kardiachain/fracsh/internal/celre"
	"github.com/kardiachain/fracsh/internal/eval"
	"github.com/kardiachain/fracsh/internal/flags"
	"github.com/kardiachain/fracsh/internal/jsre"
	"github.com/kardiachain/fracsh/lib/log"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	ConfigFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "YAML or TOML configuration file",
		Category: flags.MiscCategory,
	}
	EngineFlag = &cli.StringFlag{
		Name:     "engine",
		Usage:    `Expression language ("js", "cel")`,
		Value:    configs.DefaultEngine,
		Category: flags.ConsoleCategory,
	}
	PromptFlag = &cli.StringFlag{
		Name:     "prompt",
		Usage:    "Input prompt prefix",
		Value:    configs.DefaultPrompt,
		Category: flags.ConsoleCategory,
	}
	ExecFlag = &cli.StringFlag{
		Name:     "exec",
		Usage:    "Evaluate a single line and exit",
		Category: flags.ConsoleCategory,
	}
	NoBannerFlag = &cli.BoolFlag{
		Name:     "nobanner",
		Usage:    "Do not print the welcome message",
		Category: flags.ConsoleCategory,
	}
	CacheFlag = &cli.IntFlag{
		Name:     "cache",
		Usage:    "Number of compiled programs kept by the cel engine",
		Value:    configs.DefaultCacheSize,
		Category: flags.ConsoleCategory,
	}
	VerbosityFlag = &cli.StringFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: crit, error, warn, info, debug, trace",
		Value:    log.DefaultLevel,
		Category: flags.LoggingCategory,
	}
)

// Fatalf formats a message to standard error and exits the program.
// The message is also printed to standard output if standard error
// is redirected to a different file.
func Fatalf(format string, args ...interface{}) {
	w := io.MultiWriter(os.Stdout, os.Stderr)
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}

// MakeConfig loads the config file named by --config, if any, and applies
// the flags set on the command line over it.
func MakeConfig(ctx *cli.Context) (configs.Config, error) {
	cfg := configs.Default()
	if file := ctx.String(ConfigFileFlag.Name); file != "" {
		var err error
		if cfg, err = configs.LoadConfig(file); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(EngineFlag.Name) {
		cfg.Engine = ctx.String(EngineFlag.Name)
	}
	if ctx.IsSet(PromptFlag.Name) {
		cfg.Prompt = ctx.String(PromptFlag.Name)
	}
	if ctx.IsSet(VerbosityFlag.Name) {
		cfg.LogLevel = ctx.String(VerbosityFlag.Name)
	}
	if ctx.IsSet(CacheFlag.Name) {
		cfg.CacheSize = ctx.Int(CacheFlag.Name)
	}
	if ctx.Bool(NoBannerFlag.Name) {
		cfg.Banner = false
	}
	return cfg, cfg.Validate()
}

// MakeEngine creates the evaluator selected by cfg.
func MakeEngine(cfg configs.Config, logger log.Logger) (eval.Engine, error) {
	switch cfg.Engine {
	case configs.EngineJS:
		re, err := jsre.New(logger)
		if err != nil {
			return nil, err
		}
		return re, nil
	case configs.EngineCEL:
		re, err := celre.New(cfg.CacheSize, logger)
		if err != nil {
			return nil, err
		}
		return re, nil
	}
	return nil, fmt.Errorf("%w: %q", configs.ErrUnknownEngine, cfg.Engine)
}
