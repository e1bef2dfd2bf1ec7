package dataurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artscr/artscr/pkg/dataurl"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in     string
		mime   string
		base64 bool
		data   string
	}{
		{"data:,Hello%2C%20World!", "", false, "Hello%2C%20World!"},
		{"data:text/plain;base64,SGVsbG8=", "text/plain", true, "SGVsbG8="},
		{"data:image/png;base64,iVBORw0KGgo=", "image/png", true, "iVBORw0KGgo="},
		{"data:image/gif;charset=utf-8;base64,AAAA", "image/gif", true, "AAAA"},
	}
	for _, c := range cases {
		d, ok := dataurl.Parse(c.in)
		if assert.True(t, ok, c.in) {
			assert.Equal(t, c.mime, d.Mime, c.in)
			assert.Equal(t, c.base64, d.Base64, c.in)
			assert.Equal(t, c.data, d.Data, c.in)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"http://example.com/x.png",
		"data:noCommaHere",
		"data:bad-mime-no-slash,xx",
		"data:;noEqualsParam,xx",
	}
	for _, in := range cases {
		_, ok := dataurl.Parse(in)
		assert.False(t, ok, in)
	}
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, dataurl.IsDataURL("data:image/png;base64,AAA="))
	assert.False(t, dataurl.IsDataURL("/a/b.png"))
}
