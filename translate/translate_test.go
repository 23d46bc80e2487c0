package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("unmatched bracket", From("unmatched bracket"))
	assert.Equal("cell 7", From("cell %d", 7))
	assert.Equal("line 2 col 3", From("line %d col %d", 2, 3))
}
