package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeq(t *testing.T) {
	s := Seq(32)
	assert.Len(t, s, 32)
	for _, r := range s {
		assert.Contains(t, string(allSeq[:]), string(r))
	}
	assert.NotEqual(t, Seq(32), s)
}
