// Copyright © 2026 The peek authors

package prompt

import (
	"fmt"
	"strconv"
	"strings"

	parsec "github.com/prataprc/goparsec"

	"github.com/peeklua/peek/host"
)

// parseLiteral parses a single host-neutral literal: a double-quoted
// string, a decimal number, true, false, or nil.  The whole input must be
// consumed.
func parseLiteral(text string) (host.Literal, error) {
	s := parsec.NewScanner([]byte(text))
	root, s := newLiteralParser()(s)
	if root == nil {
		return host.Literal{}, fmt.Errorf("invalid literal: %s", text)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		return host.Literal{}, fmt.Errorf("trailing input after literal: %s", text)
	}
	return literalNode(root)
}

func newLiteralParser() parsec.Parser {
	nilAtom := parsec.Atom("nil", "NIL")
	trueAtom := parsec.Atom("true", "TRUE")
	falseAtom := parsec.Atom("false", "FALSE")
	decimal := parsec.Token(`[+-]?[0-9]+([.][0-9]+)?([eE][+-]?[0-9]+)?`, "DECIMAL")
	return parsec.OrdChoice(nil,
		parsec.String(),
		decimal,
		trueAtom,
		falseAtom,
		nilAtom,
	)
}

func literalNode(node parsec.ParsecNode) (host.Literal, error) {
	switch n := node.(type) {
	case []parsec.ParsecNode:
		if len(n) != 1 {
			return host.Literal{}, fmt.Errorf("ambiguous literal")
		}
		return literalNode(n[0])
	case string:
		// parsec.String() yields the text with surrounding quotes.
		return host.Literal{Kind: host.KindString, Str: unquoteString(n)}, nil
	case *parsec.Terminal:
		switch n.Name {
		case "DECIMAL":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return host.Literal{}, fmt.Errorf("bad number %s: %v", n.Value, err)
			}
			return host.Literal{Kind: host.KindNumber, Num: f}, nil
		case "TRUE":
			return host.Literal{Kind: host.KindBool, Bool: true}, nil
		case "FALSE":
			return host.Literal{Kind: host.KindBool, Bool: false}, nil
		case "NIL":
			return host.Literal{Kind: host.KindNil}, nil
		}
	}
	return host.Literal{}, fmt.Errorf("unsupported literal")
}

func unquoteString(s string) string {
	s = s[1 : len(s)-1]
	s = strings.ReplaceAll(s, `\"`, `"`)
	return strings.ReplaceAll(s, `\\`, `\`)
}
