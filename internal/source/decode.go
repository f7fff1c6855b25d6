package source

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is the encoding the teletext service serves pages in
const DefaultCharset = "iso-8859-1"

// charsetAuto sniffs the encoding from the Content-Type header and <meta> tags
const charsetAuto = "auto"

var (
	markupLine = regexp.MustCompile(`(?m)^<.*`)
	markupTag  = regexp.MustCompile(`<.*?>`)
)

// Decode converts raw page bytes to UTF-8 using the named charset.
// "auto" detects the encoding from contentType and the document itself.
func Decode(raw []byte, label, contentType string) (string, error) {
	if label == "" {
		label = DefaultCharset
	}

	var r io.Reader
	if strings.EqualFold(label, charsetAuto) {
		cr, err := charset.NewReader(bytes.NewReader(raw), contentType)
		if err != nil {
			return "", fmt.Errorf("detect charset: %w", err)
		}
		r = cr
	} else {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return "", fmt.Errorf("unknown charset %q: %w", label, err)
		}
		r = enc.NewDecoder().Reader(bytes.NewReader(raw))
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", label, err)
	}
	return string(out), nil
}

// StripMarkup removes every line starting with a tag, then every remaining
// tag. Line structure of the preformatted page body is kept.
func StripMarkup(s string) string {
	s = markupLine.ReplaceAllString(s, "")
	s = markupTag.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, "\r", "")
}

// Clean turns decoded page HTML into page text. A page whose stripped text
// is only whitespace is empty.
func Clean(number int, decoded string) (string, error) {
	text := StripMarkup(decoded)
	if strings.TrimSpace(text) == "" {
		return "", EmptyPage(number)
	}
	return html.UnescapeString(text), nil
}

// Parse runs the whole pipeline over raw page bytes
func Parse(number int, raw []byte, label, contentType string) (string, error) {
	decoded, err := Decode(raw, label, contentType)
	if err != nil {
		return "", Transport(number, err)
	}
	return Clean(number, decoded)
}
