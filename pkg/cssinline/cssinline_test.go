package cssinline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artscr/artscr/pkg/cssinline"
)

func TestParseSimple(t *testing.T) {
	decls := cssinline.Parse("display: none; visibility:hidden")
	v, ok := cssinline.Value(decls, "display")
	assert.True(t, ok)
	assert.Equal(t, "none", v)

	v, ok = cssinline.Value(decls, "visibility")
	assert.True(t, ok)
	assert.Equal(t, "hidden", v)
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, cssinline.Parse(""))
}

func TestParseMissingProperty(t *testing.T) {
	_, ok := cssinline.Value(cssinline.Parse("display:none"), "color")
	assert.False(t, ok)
}
