package filesystem

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Single-byte names behave like Node buffers: writes keep the low byte of
// each UTF-16 code unit, and ascii reads clear the high bit first.
const (
	encLatin1 = "latin1"
	encBinary = "binary"
	encASCII  = "ascii"
)

// lookupEncoding maps an encoding name onto an x/text encoding.
// A nil encoding with a nil error means the bytes are already UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return nil, nil
	case encLatin1, encBinary, encASCII:
		return charmap.ISO8859_1, nil
	case "utf16le", "utf-16le", "ucs2", "ucs-2":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

func decode(data []byte, name string) (string, error) {
	switch strings.ToLower(name) {
	case "base64":
		return base64.StdEncoding.EncodeToString(data), nil
	case "hex":
		return hex.EncodeToString(data), nil
	case encASCII:
		masked := make([]byte, len(data))
		for i, b := range data {
			masked[i] = b & 0x7f
		}
		data = masked
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	if enc == nil {
		return string(data), nil
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return string(out), nil
}

func encode(content, name string) ([]byte, error) {
	switch strings.ToLower(name) {
	case "base64":
		return decodeBase64(content)
	case "hex":
		return hex.DecodeString(content)
	case encLatin1, encBinary, encASCII:
		units := utf16.Encode([]rune(content))
		out := make([]byte, len(units))
		for i, u := range units {
			out[i] = byte(u)
		}
		return out, nil
	}
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return []byte(content), nil
	}
	out, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", name, err)
	}
	return out, nil
}

// decodeBase64 accepts standard and URL-safe alphabets, with or without
// padding. Whitespace is ignored.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '-':
			return '+'
		case '_':
			return '/'
		case '=', ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
	return base64.RawStdEncoding.DecodeString(s)
}
