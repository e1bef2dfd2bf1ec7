// Package charset best-effort-decodes raw HTML bytes to UTF-8 before
// handoff to the DOM parser, for callers (cmd/artscr) that only have a
// byte slice and no Content-Type header to consult.
package charset

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// minConfidence is the chardet confidence floor below which the detected
// charset is discarded in favor of assuming UTF-8.
const minConfidence = 80

// DetectAndDecode converts data to UTF-8, first by a <meta charset> scan of
// the first 1KB, then by chardet's statistical detector, and falls back to
// treating data as already UTF-8 when neither commits at the confidence
// floor or the named charset isn't recognised.
func DetectAndDecode(data []byte) string {
	if enc := fromMetaTag(data); enc != nil {
		if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
			return string(decoded)
		}
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result.Confidence < minConfidence {
		return string(data)
	}

	enc := byName(result.Charset)
	if enc == nil {
		return string(data)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

func fromMetaTag(data []byte) encoding.Encoding {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	content := strings.ToLower(string(head))

	idx := strings.Index(content, "charset=")
	if idx == -1 {
		return nil
	}
	start := idx + len("charset=")
	if start < len(content) && (content[start] == '"' || content[start] == '\'') {
		start++
	}
	end := start
	for end < len(content) && content[end] != '"' && content[end] != '\'' && content[end] != '>' && content[end] != ' ' {
		end++
	}
	if end <= start {
		return nil
	}
	return byName(strings.Trim(content[start:end], `"'`))
}

func byName(name string) encoding.Encoding {
	name = strings.ReplaceAll(strings.ToLower(name), "_", "-")
	switch name {
	case "utf-8", "utf8":
		return unicode.UTF8
	case "utf-16", "utf16", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	case "iso-8859-2", "latin2":
		return charmap.ISO8859_2
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15
	case "windows-1252", "cp1252":
		return charmap.Windows1252
	case "windows-1251", "cp1251":
		return charmap.Windows1251
	case "shift-jis", "shift_jis", "sjis":
		return japanese.ShiftJIS
	case "euc-jp", "eucjp":
		return japanese.EUCJP
	case "euc-kr", "euckr":
		return korean.EUCKR
	case "gbk":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "big5":
		return traditionalchinese.Big5
	default:
		return nil
	}
}
