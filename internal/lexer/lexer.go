// Package lexer turns Lox source text into a token stream.
//
// The lexer is an external collaborator of the core: the parser,
// resolver, and interpreter only depend on the Token type it produces,
// never on how scanning happens. It reports lexical errors through the
// same Reporter the parser and resolver use, so a single run can surface
// scan errors, parse errors, and resolver errors together.
package lexer

import (
	"strconv"

	"github.com/loxlang/lox/internal/loxerr"
	"github.com/loxlang/lox/pkg/token"
)

// Lexer scans a single source string into a flat token slice.
type Lexer struct {
	source   string
	tokens   []token.Token
	reporter loxerr.Reporter

	start   int
	current int
	line    int
}

// New creates a Lexer over source that reports lexical errors to reporter.
func New(source string, reporter loxerr.Reporter) *Lexer {
	return &Lexer{source: source, reporter: reporter, line: 1}
}

// ScanTokens scans the entire source and returns the token stream,
// terminated by a single EOF token.
func (l *Lexer) ScanTokens() []token.Token {
	for !l.atEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, token.New(token.EOF, "", nil, l.line))
	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.addToken(token.LeftParen)
	case ')':
		l.addToken(token.RightParen)
	case '{':
		l.addToken(token.LeftBrace)
	case '}':
		l.addToken(token.RightBrace)
	case ',':
		l.addToken(token.Comma)
	case '.':
		l.addToken(token.Dot)
	case '-':
		l.addToken(token.Minus)
	case '+':
		l.addToken(token.Plus)
	case ';':
		l.addToken(token.Semicolon)
	case '*':
		l.addToken(token.Star)
	case '!':
		l.addToken(l.choose('=', token.BangEqual, token.Bang))
	case '=':
		l.addToken(l.choose('=', token.EqualEqual, token.Equal))
	case '<':
		l.addToken(l.choose('=', token.LessEqual, token.Less))
	case '>':
		l.addToken(l.choose('=', token.GreaterEqual, token.Greater))
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
		} else {
			l.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		l.line++
	case '"':
		l.scanString()
	default:
		switch {
		case isDigit(c):
			l.scanNumber()
		case isAlpha(c):
			l.scanIdentifier()
		default:
			l.reporter.ReportLine(l.line, "Unexpected character.")
		}
	}
}

func (l *Lexer) scanString() {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		l.reporter.ReportLine(l.line, "Unterminated string.")
		return
	}
	l.advance() // closing quote
	value := l.source[l.start+1 : l.current-1]
	l.addTokenLiteral(token.String, value)
}

func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := l.source[l.start:l.current]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		l.reporter.ReportLine(l.line, "Invalid number literal.")
		return
	}
	l.addTokenLiteral(token.Number, value)
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.source[l.start:l.current]
	kind, ok := token.Keywords[text]
	if !ok {
		kind = token.Identifier
	}
	l.addToken(kind)
}

func (l *Lexer) addToken(kind token.Kind) {
	l.addTokenLiteral(kind, nil)
}

func (l *Lexer) addTokenLiteral(kind token.Kind, literal any) {
	text := l.source[l.start:l.current]
	l.tokens = append(l.tokens, token.New(kind, text, literal, l.line))
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) choose(expected byte, ifMatch, otherwise token.Kind) token.Kind {
	if l.match(expected) {
		return ifMatch
	}
	return otherwise
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
