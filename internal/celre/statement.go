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

package celre

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	errEmptyExpression = errors.New("missing expression")

	bindingRe = regexp.MustCompile(`^(?:(let)\s+)?([A-Za-z_][A-Za-z0-9_]*)\s*=(?:$|([^=].*)$)`)
)

type statement struct {
	declare bool
	name    string
	expr    string
}

// splitStatements splits line on ';' outside of string literals and
// brackets. Empty statements are dropped.
func splitStatements(line string) []string {
	var (
		stmts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			if depth > 0 {
				depth--
			}
		case c == ';' && depth == 0:
			stmts = appendStatement(stmts, line[start:i])
			start = i + 1
		}
	}
	return appendStatement(stmts, line[start:])
}

func appendStatement(stmts []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}

func parseStatement(src string) (statement, error) {
	m := bindingRe.FindStringSubmatch(src)
	if m == nil {
		if strings.HasPrefix(src, "let ") {
			return statement{}, errors.Errorf("malformed binding %q", src)
		}
		return statement{expr: src}, nil
	}
	expr := strings.TrimSpace(m[3])
	if expr == "" {
		return statement{}, errors.Wrap(errEmptyExpression, m[2])
	}
	return statement{declare: m[1] != "", name: m[2], expr: expr}, nil
}
