package runtime_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loxlang/lox/internal/runtime"
)

func TestTruthiness(t *testing.T) {
	assert.False(t, runtime.Truthy(nil))
	assert.False(t, runtime.Truthy(false))
	assert.True(t, runtime.Truthy(true))
	assert.True(t, runtime.Truthy(0.0))
	assert.True(t, runtime.Truthy(""))
}

func TestNumberEqualityNaNReflexive(t *testing.T) {
	nan := math.NaN()
	assert.True(t, runtime.Equal(nan, nan))
	assert.True(t, runtime.Equal(1.0, 1.0))
	assert.False(t, runtime.Equal(1.0, 2.0))
}

func TestEqualityAcrossVariants(t *testing.T) {
	assert.True(t, runtime.Equal(nil, nil))
	assert.False(t, runtime.Equal(nil, false))
	assert.False(t, runtime.Equal(1.0, "1"))
	assert.True(t, runtime.Equal("a", "a"))
}

func TestStringifyNumberDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "3", runtime.Stringify(3.0))
	assert.Equal(t, "3.5", runtime.Stringify(3.5))
	assert.Equal(t, "nil", runtime.Stringify(nil))
	assert.Equal(t, "true", runtime.Stringify(true))
}

func TestInstanceAndClassIdentityEquality(t *testing.T) {
	classA := runtime.NewClass("A", nil, nil)
	classB := runtime.NewClass("A", nil, nil)
	assert.False(t, runtime.Equal(classA, classB), "distinct descriptors are not equal despite same name")

	instance := runtime.NewInstance(classA)
	assert.True(t, runtime.Equal(instance, instance))
	assert.Equal(t, "A instance", runtime.Stringify(instance))
}
