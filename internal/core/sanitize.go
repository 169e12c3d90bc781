package core

// sanitize.go cleans Extranet CSV bytes of common encoding artifacts before
// parsing:
//
//   - A leading UTF-8 BOM (0xEF 0xBB 0xBF) written by Windows programs is removed
//   - Each byte that is not part of a valid UTF-8 sequence is replaced with '?'

import (
	"bytes"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SkipBOM returns data without a leading UTF-8 BOM.
func SkipBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// SanitizeUTF8 returns data with every invalid byte replaced by '?'.
// Valid input is returned as-is without copying.
func SanitizeUTF8(data []byte) []byte {
	if isAllASCII(data) || utf8.Valid(data) {
		return data
	}

	out := make([]byte, 0, len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			out = append(out, '?')
		} else {
			out = append(out, data[:size]...)
		}
		data = data[size:]
	}
	return out
}

// isAllASCII returns true if all bytes are ASCII (< 128).
func isAllASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// CleanCSV applies SkipBOM then SanitizeUTF8.
func CleanCSV(data []byte) []byte {
	return SanitizeUTF8(SkipBOM(data))
}
