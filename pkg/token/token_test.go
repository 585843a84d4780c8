package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxlang/lox/pkg/token"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "LEFT_PAREN", token.LeftParen.String())
	assert.Equal(t, "EOF", token.EOF.String())
}

func TestKeywordsAreComplete(t *testing.T) {
	want := []string{"and", "class", "else", "false", "for", "fun", "if",
		"nil", "or", "print", "return", "super", "this", "true", "var", "while"}
	for _, w := range want {
		_, ok := token.Keywords[w]
		assert.Truef(t, ok, "missing keyword %q", w)
	}
	assert.Len(t, token.Keywords, len(want))
}

func TestTokenString(t *testing.T) {
	tok := token.New(token.Number, "3.5", 3.5, 1)
	assert.Equal(t, "NUMBER 3.5 3.5", tok.String())
}
