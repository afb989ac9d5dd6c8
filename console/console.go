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

// Package console implements the read-evaluate-print loop on top of an
// eval.Engine.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/console/prompt"
	"github.com/pkg/errors"

	"github.com/kardiachain/fracsh/internal/eval"
	"github.com/kardiachain/fracsh/lib/log"
)

// DefaultPrompt is the default prompt line prefix to use for user input querying.
const DefaultPrompt = "> "

// Config is the collection of configurations to fine tune the behavior of the
// console.
type Config struct {
	Engine   eval.Engine         // Evaluator for the lines read from the user
	Prompt   string              // Input prompt prefix string (defaults to DefaultPrompt)
	Prompter prompt.UserPrompter // Input prompter to allow interactive user feedback (defaults to prompt.Stdin)
	Printer  io.Writer           // Output writer to serialize any display strings to (defaults to os.Stdout)
	Logger   log.Logger
}

// Console is an interactive shell around an evaluation engine.
type Console struct {
	engine   eval.Engine
	prompt   string
	prompter prompt.UserPrompter
	printer  io.Writer
	history  []string
	logger   log.Logger
}

// New initializes a console, filling in defaults for unset fields.
func New(config Config) (*Console, error) {
	if config.Engine == nil {
		return nil, errors.New("console requires an engine")
	}
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.Prompter == nil {
		config.Prompter = prompt.Stdin
	}
	if config.Printer == nil {
		config.Printer = os.Stdout
	}
	if config.Logger == nil {
		config.Logger = log.NewNopLogger()
	}
	c := &Console{
		engine:   config.Engine,
		prompt:   config.Prompt,
		prompter: config.Prompter,
		printer:  config.Printer,
		logger:   config.Logger,
	}
	c.prompter.SetHistory(nil)
	c.prompter.SetWordCompleter(c.AutoCompleteInput)
	return c, nil
}

// AutoCompleteInput completes the word under the cursor with a registered
// function name.
func (c *Console) AutoCompleteInput(line string, pos int) (string, []string, string) {
	if len(line) == 0 || pos == 0 {
		return "", nil, ""
	}
	start := pos - 1
	for ; start > 0; start-- {
		if !isIdentChar(line[start-1]) {
			break
		}
	}
	word := line[start:pos]
	var completions []string
	for _, fn := range eval.Funcs() {
		if strings.HasPrefix(fn.Name, word) {
			completions = append(completions, fn.Name+"(")
		}
	}
	return line[:start], completions, line[pos:]
}

func isIdentChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// Welcome shows a summary of the engine and the functions available to
// scripts.
func (c *Console) Welcome() {
	message := fmt.Sprintf("Welcome to the fraction console (%s engine)!\n\n", c.engine.Name())
	message += "Registered functions:\n"
	for _, fn := range eval.Funcs() {
		message += fmt.Sprintf(" %-38s %s\n", fn.Signature(), fn.Doc)
	}
	message += "\nTry: let x = frac(1,2); let y = frac(2,3); plus(x, y)\n"
	fmt.Fprintln(c.printer, message)
}

// Evaluate executes line and pretty prints the result to the printer. Errors
// are printed and never end the session.
func (c *Console) Evaluate(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	res, err := c.engine.Eval(line)
	if err == nil {
		var text string
		if text, err = res.Render(); err == nil {
			if res.Kind != eval.ResultNone {
				fmt.Fprintln(c.printer, text)
			}
			return nil
		}
	}
	c.logger.Debug("Evaluation error", "line", line, "err", err)
	fmt.Fprintf(c.printer, "Error: %v\n", err)
	return err
}

// Interactive reads lines from the prompter and evaluates them until the
// input ends or is interrupted.
func (c *Console) Interactive() {
	for {
		line, err := c.prompter.PromptInput(c.prompt)
		if err != nil {
			fmt.Fprintln(c.printer, "exit...")
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		c.history = append(c.history, line)
		c.prompter.AppendHistory(line)
		c.Evaluate(line)
	}
}

// History returns the lines entered in this session.
func (c *Console) History() []string {
	return append([]string(nil), c.history...)
}
