package common

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.NoError(t, Combine(nil, nil))

	e1 := errors.New("one")
	e2 := errors.New("two")
	err := Combine(e1, nil, e2)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
}

func TestIsClosedConnErr(t *testing.T) {
	assert.True(t, IsClosedConnErr(fmt.Errorf("close: %w", net.ErrClosed)))
	assert.False(t, IsClosedConnErr(errors.New("other")))
	assert.False(t, IsClosedConnErr(nil))
}
