package textstore

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// BOM (Byte Order Mark) prefixes.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Encoding describes how a document is stored on disk.
type Encoding struct {
	// Name is the WHATWG label of the encoding, e.g. "utf-8" or "windows-1252".
	Name string

	// BOM is true if the file started with a byte order mark.
	BOM bool

	enc encoding.Encoding
}

// UTF8 is the encoding of new documents.
var UTF8 = Encoding{Name: "utf-8", enc: unicode.UTF8}

// EncodingByName returns the encoding registered under a WHATWG label.
func EncodingByName(name string) (Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return Encoding{}, err
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(name)
	}
	return Encoding{Name: canonical, enc: enc}, nil
}

// String returns the encoding name, suffixed when a BOM is written.
func (e Encoding) String() string {
	if e.BOM {
		return e.Name + " (bom)"
	}
	return e.Name
}

func (e Encoding) encoding() encoding.Encoding {
	if e.enc == nil {
		return unicode.UTF8
	}
	return e.enc
}

// DetectEncoding guesses the encoding of file content.
// Byte order marks win, then UTF-8 validity, then the HTML sniffing
// heuristics, which fall back to windows-1252 for arbitrary bytes.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return Encoding{Name: "utf-8", BOM: true, enc: unicode.UTF8}
	case bytes.HasPrefix(content, bomUTF16LE):
		return Encoding{Name: "utf-16le", BOM: true, enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}
	case bytes.HasPrefix(content, bomUTF16BE):
		return Encoding{Name: "utf-16be", BOM: true, enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	}

	if utf8.Valid(content) {
		return UTF8
	}

	enc, name, _ := charset.DetermineEncoding(content, "text/plain")
	return Encoding{Name: name, enc: enc}
}

// Decode converts raw file content to UTF-8 text using the detected encoding.
// Undecodable sequences become U+FFFD; decoding never fails.
func Decode(content []byte) (string, Encoding) {
	e := DetectEncoding(content)
	return e.Decode(content), e
}

// Decode converts content in this encoding to UTF-8, stripping a leading BOM.
func (e Encoding) Decode(content []byte) string {
	content = stripBOM(content)
	out, err := e.encoding().NewDecoder().Bytes(content)
	if err != nil {
		return strings.ToValidUTF8(string(content), string(utf8.RuneError))
	}
	return string(out)
}

// Encode converts UTF-8 text to this encoding. Characters the encoding
// cannot represent are replaced by the encoding's replacement byte.
func (e Encoding) Encode(text string) []byte {
	enc := encoding.ReplaceUnsupported(e.encoding().NewEncoder())
	out, err := enc.Bytes([]byte(text))
	if err != nil {
		out = []byte(strings.ToValidUTF8(text, "?"))
	}
	if e.BOM {
		out = addBOM(out, e.Name)
	}
	return out
}

func stripBOM(content []byte) []byte {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return content[len(bomUTF8):]
	case bytes.HasPrefix(content, bomUTF16LE), bytes.HasPrefix(content, bomUTF16BE):
		return content[2:]
	}
	return content
}

func addBOM(content []byte, name string) []byte {
	var bom []byte
	switch name {
	case "utf-8":
		bom = bomUTF8
	case "utf-16le":
		bom = bomUTF16LE
	case "utf-16be":
		bom = bomUTF16BE
	default:
		return content
	}
	return append(append([]byte(nil), bom...), content...)
}
