// SPDX-License-Identifier: MPL-2.0

// Package lexer splits a raw argument vector into classified tokens.
//
// Tokenizing performs no schema lookup and cannot fail: whether "-x" is a known
// flag is decided later by the binder, so its errors can reference the schema.
package lexer

import "strings"

// Separator is the literal end-of-options marker.
const Separator = "--"

const (
	// LongFlag is "--name" or "--name=value".
	LongFlag TokenKind = iota + 1
	// ShortCluster is "-abc": one or more single-character names.
	ShortCluster
	// Positional is any other argument, or anything after the separator.
	Positional
	// End is the "--" separator itself.
	End
)

type (
	// TokenKind classifies a Token.
	TokenKind int

	// Token is one classified argv element.
	Token struct {
		// Kind classifies the token.
		Kind TokenKind
		// Name is the flag name without dashes (LongFlag) or the cluster characters (ShortCluster).
		Name string
		// Value is the inline value of "--name=value", or the text of a Positional.
		Value string
		// HasValue reports whether a LongFlag carried an inline value (possibly empty).
		HasValue bool
		// Raw is the original argv element.
		Raw string
	}
)

// String returns the name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case LongFlag:
		return "long-flag"
	case ShortCluster:
		return "short-cluster"
	case Positional:
		return "positional"
	case End:
		return "separator"
	default:
		return "unknown"
	}
}

// Tokenize classifies every element of argv (program name excluded).
// It returns exactly one token per element.
func Tokenize(argv []string) []Token {
	tokens := make([]Token, 0, len(argv))
	afterSeparator := false
	for _, arg := range argv {
		if afterSeparator {
			tokens = append(tokens, Token{Kind: Positional, Value: arg, Raw: arg})
			continue
		}
		tok := classify(arg)
		if tok.Kind == End {
			afterSeparator = true
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func classify(arg string) Token {
	switch {
	case arg == Separator:
		return Token{Kind: End, Raw: arg}
	case strings.HasPrefix(arg, "--"):
		name, value, hasValue := strings.Cut(arg[2:], "=")
		return Token{Kind: LongFlag, Name: name, Value: value, HasValue: hasValue, Raw: arg}
	case len(arg) > 1 && arg[0] == '-':
		return Token{Kind: ShortCluster, Name: arg[1:], Raw: arg}
	default:
		return Token{Kind: Positional, Value: arg, Raw: arg}
	}
}

// Strings returns the raw text of tokens, in order.
func Strings(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Raw
	}
	return out
}
