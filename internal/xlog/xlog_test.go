package xlog_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artscr/artscr/internal/xlog"
)

func TestDebugfIsSilentByDefault(t *testing.T) {
	// A fresh discard sink: Debugf must not panic and produces no visible
	// output until SetOutput is called.
	xlog.Debugf("unseen %d", 1)
	assert.Equal(t, io.Discard, xlog.Logger.Writer())
}

func TestSetOutputRedirectsLogger(t *testing.T) {
	var buf bytes.Buffer
	xlog.SetOutput(&buf)
	defer xlog.SetOutput(io.Discard)

	xlog.Debugf("hello %s", "world")
	assert.Contains(t, buf.String(), "hello world")
}
