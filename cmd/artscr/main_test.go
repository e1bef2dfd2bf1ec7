package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("word ")
	}
	return b.String()
}

func writeTempHTML(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunMissingPathExitsOne(t *testing.T) {
	assert.Equal(t, 1, run(nil))
}

func TestRunFileNotFoundExitsTwo(t *testing.T) {
	assert.Equal(t, 2, run([]string{"/no/such/file.html"}))
}

func TestRunNoCandidateExitsThree(t *testing.T) {
	path := writeTempHTML(t, `<html><body><p>too short</p></body></html>`)
	assert.Equal(t, 3, run([]string{path}))
}

func TestRunSucceedsOnRealArticle(t *testing.T) {
	path := writeTempHTML(t, `<html><body><main><p>`+words(80)+`</p><p>`+words(80)+`</p></main></body></html>`)
	assert.Equal(t, 0, run([]string{path}))
}
