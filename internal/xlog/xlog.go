// Package xlog is the package-level logging sink shared across artscr's
// internal packages: silent by default, swappable by the embedding
// application via SetOutput.
package xlog

import (
	"io"
	"log"
)

// Logger is the shared sink. It discards output until SetOutput points it
// somewhere, so library callers never see unsolicited log lines.
var Logger = log.New(io.Discard, "artscr: ", log.LstdFlags)

// SetOutput redirects Logger's destination, e.g. os.Stderr for a CLI.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// Debugf logs a low-severity diagnostic: an anomaly §7 absorbs silently
// rather than surfacing as an error (malformed JSON-LD, an unparseable
// date, a <body>-less document, an unresolved URL).
func Debugf(format string, args ...interface{}) {
	Logger.Printf(format, args...)
}
