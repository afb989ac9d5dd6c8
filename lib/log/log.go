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

// Package log is a thin layer over the go-ethereum logger so that every
// package logs through the same root handler.
package log

import (
	"io"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
)

// Logger writes key/value pairs to a Handler.
type Logger = log.Logger

// DefaultLevel keeps the console quiet unless something goes wrong.
const DefaultLevel = "warn"

// Setup installs a terminal handler on the root logger that drops records
// above the given level.
func Setup(level string, w io.Writer, color bool) error {
	lvl, err := log.LvlFromString(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(w, log.TerminalFormat(color))))
	return nil
}

// New returns a logger carrying ctx that writes through the root handler.
func New(ctx ...interface{}) Logger {
	return log.New(ctx...)
}
