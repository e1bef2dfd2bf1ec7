package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artscr/artscr/pkg/charset"
)

func TestDetectAndDecodeHonoursMetaCharsetUTF8(t *testing.T) {
	input := []byte(`<html><head><meta charset="utf-8"></head><body>héllo</body></html>`)
	out := charset.DetectAndDecode(input)
	assert.Contains(t, out, "héllo")
}

func TestDetectAndDecodeHandlesPlainASCII(t *testing.T) {
	input := []byte(`<html><body>hello world</body></html>`)
	out := charset.DetectAndDecode(input)
	assert.Equal(t, string(input), out)
}
