package dataset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported dataset encodings.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
	EncodingLatin1      = "iso-8859-1"
)

// Encodings lists the accepted values of the encoding setting.
var Encodings = []string{EncodingUTF8, EncodingWindows1252, EncodingLatin1}

// Decode wraps r so that it yields UTF-8 text. UTF-8 input has its byte order
// mark removed; spreadsheet exports in Windows-1252 or Latin-1 are transcoded.
func Decode(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case EncodingWindows1252, "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	case EncodingLatin1, "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	default:
		return nil, fmt.Errorf("dataset: unsupported encoding %q", encoding)
	}
}
