package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestNewSet(t *testing.T) {
	s, err := NewSet()
	require.NoError(t, err)

	title := int32(s.Face(Title).Metrics().Height)
	small := int32(s.Face(Small).Metrics().Height)
	assert.Greater(t, title, small)
	assert.Equal(t, basicfont.Face7x13, s.Face("missing"))

	var none *Set
	assert.Equal(t, basicfont.Face7x13, none.Face(Regular))
}

func TestLoadWithSize_BadFont(t *testing.T) {
	s, err := NewSet()
	require.NoError(t, err)
	assert.Error(t, s.LoadWithSize("broken", []byte("not a font"), 12))
}
