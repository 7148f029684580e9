package main

import (
	"testing"

	"PongGL/geometry"

	"github.com/stretchr/testify/assert"
)

func TestStartupErrorKeepsCause(t *testing.T) {
	_, cause := geometry.Circle(2, 10)

	err := startupError("%v", "ball mesh", cause)

	assert.ErrorIs(t, err, geometry.ErrTooFewTriangles)
	assert.Contains(t, err.Error(), "ball mesh: ")
}
