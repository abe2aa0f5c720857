// Package encoding implements the byte-encoding transcoder: decoding
// input source bytes and encoding output strings under a selectable
// {utf8, windows-1252} configuration, using
// golang.org/x/text/encoding/charmap for the legacy codepage.
package encoding

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding selects the byte encoding applied on both input decode and
// output encode.
type Encoding int

const (
	UTF8 Encoding = iota
	Windows1252
)

func (e Encoding) String() string {
	if e == Windows1252 {
		return "windows-1252"
	}
	return "utf8"
}

// Decode converts raw source bytes to a Go string under e.
func Decode(b []byte, e Encoding) (string, error) {
	if e == UTF8 {
		out, err := unicode.UTF8.NewDecoder().Bytes(b)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode converts a Go string to an output byte buffer under e, appending
// a trailing NUL, since output strings are stored as null-terminated
// owned buffers. Characters unrepresentable in windows-1252 are replaced
// rather than rejected.
func Encode(s string, e Encoding) ([]byte, error) {
	var out []byte
	var err error
	if e == UTF8 {
		out = []byte(s)
	} else {
		enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
		out, err = enc.Bytes([]byte(s))
		if err != nil {
			return nil, err
		}
	}
	return append(out, 0), nil
}
