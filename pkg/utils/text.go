package utils

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnsupportedEncoding indicates an encoding name outside the supported set
	ErrUnsupportedEncoding = errors.New("encoding must be one of utf-8, windows-1254, iso-8859-9")
	// ErrUndecodableText indicates bytes that are not valid in the requested encoding
	ErrUndecodableText = errors.New("file content could not be decoded")
)

const byteOrderMark = "\ufeff"

// Supported encoding names
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1254 = "windows-1254"
	EncodingISO88599    = "iso-8859-9"
)

var turkishCharmaps = map[string]encoding.Encoding{
	EncodingWindows1254: charmap.Windows1254,
	"cp1254":            charmap.Windows1254,
	EncodingISO88599:    charmap.ISO8859_9,
	"latin5":            charmap.ISO8859_9,
}

// DecodeText turns uploaded bytes into a string. An empty name means UTF-8 when the
// bytes are valid UTF-8 and Windows-1254 otherwise. A leading UTF-8 BOM is dropped.
func DecodeText(data []byte, name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "":
		if utf8.Valid(data) {
			return strings.TrimPrefix(string(data), byteOrderMark), nil
		}
		return decodeCharmap(data, charmap.Windows1254)
	case EncodingUTF8, "utf8":
		if !utf8.Valid(data) {
			return "", ErrUndecodableText
		}
		return strings.TrimPrefix(string(data), byteOrderMark), nil
	}

	enc, ok := turkishCharmaps[name]
	if !ok {
		return "", ErrUnsupportedEncoding
	}
	return decodeCharmap(data, enc)
}

func decodeCharmap(data []byte, enc encoding.Encoding) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Join(ErrUndecodableText, err)
	}
	return strings.TrimPrefix(string(out), byteOrderMark), nil
}
