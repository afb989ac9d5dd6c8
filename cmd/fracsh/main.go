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

// fracsh is an interactive calculator for exact fractions.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ethereum/go-ethereum/console/prompt"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/kardiachain/fracsh/cmd/utils"
	"github.com/kardiachain/fracsh/configs"
	"github.com/kardiachain/fracsh/console"
	"github.com/kardiachain/fracsh/internal/flags"
	"github.com/kardiachain/fracsh/lib/log"
)

var (
	consoleFlags = []cli.Flag{
		utils.EngineFlag,
		utils.PromptFlag,
		utils.ExecFlag,
		utils.NoBannerFlag,
		utils.CacheFlag,
	}

	miscFlags = []cli.Flag{
		utils.ConfigFileFlag,
		utils.VerbosityFlag,
	}
)

var app = flags.NewApp("interactive calculator for exact fractions")

func init() {
	app.Action = fracsh
	app.Commands = []*cli.Command{
		dumpConfigCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = flags.Merge(consoleFlags, miscFlags)

	app.After = func(ctx *cli.Context) error {
		prompt.Stdin.Close() // Resets terminal mode.
		return nil
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging sends log records to stderr, colored when it is a terminal.
func setupLogging(cfg configs.Config) error {
	usecolor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
	output := io.Writer(os.Stderr)
	if usecolor {
		output = colorable.NewColorableStderr()
	}
	return log.Setup(cfg.LogLevel, output, usecolor)
}

// fracsh is the main entry point. It starts the console, or evaluates the
// --exec line and exits.
func fracsh(ctx *cli.Context) error {
	if args := ctx.Args().Slice(); len(args) > 0 {
		return fmt.Errorf("invalid command: %q", args[0])
	}
	cfg, err := utils.MakeConfig(ctx)
	if err != nil {
		utils.Fatalf("Invalid configuration: %v", err)
	}
	if err := setupLogging(cfg); err != nil {
		utils.Fatalf("%v", err)
	}
	logger := log.New("module", "fracsh")

	engine, err := utils.MakeEngine(cfg, logger)
	if err != nil {
		utils.Fatalf("Failed to start the %s engine: %v", cfg.Engine, err)
	}
	c, err := console.New(console.Config{
		Engine: engine,
		Prompt: cfg.Prompt,
		Logger: logger,
	})
	if err != nil {
		utils.Fatalf("Failed to start the console: %v", err)
	}
	logger.Debug("Console started", "engine", engine.Name(), "prompt", cfg.Prompt)

	if line := ctx.String(utils.ExecFlag.Name); line != "" {
		if err := c.Evaluate(line); err != nil {
			return cli.Exit("", 1)
		}
		return nil
	}

	// Otherwise print the welcome screen and enter interactive mode
	if cfg.Banner {
		c.Welcome()
	}
	c.Interactive()
	return nil
}
