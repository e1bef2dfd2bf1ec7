package docurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artscr/artscr/pkg/docurl"
)

func TestNew(t *testing.T) {
	d, ok := docurl.New("https://example.com/blog/post/index.html")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", d.BaseURL)
	assert.Equal(t, "https://example.com/blog/post/", d.PathURL)
}

func TestTryMakeAbsolute(t *testing.T) {
	d, ok := docurl.New("https://example.com/blog/post/index.html")
	require.True(t, ok)

	cases := []struct {
		in      string
		want    string
		resolve bool
	}{
		{"", "https://example.com", true},
		{"//cdn.example.com/x.js", "https:" + "//cdn.example.com/x.js", true},
		{"/assets/a.png", "https://example.com/assets/a.png", true},
		{"./thumb.png", "https://example.com/blog/post/thumb.png", true},
		{"thumb.png", "https://example.com/blog/post/thumb.png", true},
		{"#section", "", false},
		{"data:image/png;base64,AAA=", "", false},
		{"https://other.com/x", "", false},
	}
	for _, c := range cases {
		got, ok := d.TryMakeAbsolute(c.in)
		assert.Equal(t, c.resolve, ok, c.in)
		if ok {
			assert.Equal(t, c.want, got, c.in)
		}
	}
}

func TestRoundTripAbsoluteURLIsUnresolved(t *testing.T) {
	d, _ := docurl.New("https://example.com/")
	_, ok := d.TryMakeAbsolute("https://example.com/already/absolute")
	assert.False(t, ok)
}
