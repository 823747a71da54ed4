package webprune

import (
	"bytes"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// legacyEncodings are tried in order when a file is not valid UTF-8.
// ISO 8859-1 accepts every byte sequence, so in practice only unreadable
// files fall all the way through.
var legacyEncodings = []encoding.Encoding{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// ReadFileSafe reads a file as text, attempting UTF-8 (with or without BOM)
// first and falling back through ISO 8859-1 and Windows-1252. It returns an
// empty string and the underlying error when the file cannot be read at all;
// callers treat empty content as "nothing to process".
func ReadFileSafe(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(raw), nil
}

// DecodeText converts raw file bytes to a string using the encoding attempt
// chain. A UTF-8 BOM is stripped before decoding.
func DecodeText(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw)
	}

	for _, enc := range legacyEncodings {
		decoded, err := enc.NewDecoder().Bytes(raw)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded)
		}
	}

	// Unreachable in practice: ISO 8859-1 decodes any byte sequence.
	return string(raw)
}
