package coalesce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "b", String("", "b", "c"))
	assert.Equal(t, "a", String("a", "b"))
	assert.Equal(t, "", String("", ""))
	assert.Equal(t, "", String())
}

func TestValue(t *testing.T) {
	assert.Equal(t, "x", Value(nil, "", "x"))
	assert.Equal(t, float64(0), Value(nil, float64(0), "y"), "numeric zero is present")
	assert.Nil(t, Value(nil, "", nil))
	assert.Nil(t, Value())
}
