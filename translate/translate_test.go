package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage("en-US"))
	assert.Equal("line 3 pc 12", From("line %d pc %d", 3, 12))
	assert.Equal("no arguments", From("no arguments"))
}

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	assert.Error(SetLanguage("not a language tag!"))
	assert.NoError(SetLanguage("de"))
	assert.NoError(SetLanguage("en-US"))
	assert.Equal("1,500 flowers", From("%v flowers", 1500))
}
