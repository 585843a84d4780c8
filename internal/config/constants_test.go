package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxlang/lox/internal/config"
)

func TestHasSourceExt(t *testing.T) {
	assert.True(t, config.HasSourceExt("script.lox"))
	assert.True(t, config.HasSourceExt("/path/to/script.lox"))
	assert.False(t, config.HasSourceExt("script.txt"))
	assert.False(t, config.HasSourceExt("lox"))
	assert.False(t, config.HasSourceExt(""))
}
