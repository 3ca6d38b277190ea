package chardet

import (
	"errors"

	"github.com/lestrrat-go/strcursor"
)

// Version of the chardet library, reported by cmd/chardet.
const Version = "0.1.0"

var (
	ErrUnsupportedEncoding = errors.New("no decoder available for detected encoding")
)

// Encoding identifies the text encoding detected in a byte buffer.
// The zero value is UTF8N, which is also what Detect falls back to
// when nothing else matches.
type Encoding int

const (
	// UTF8N is UTF-8 without a byte order mark.
	UTF8N Encoding = iota

	// UTF8 is UTF-8 with a byte order mark.
	UTF8

	// UTF16BE is UTF-16, big-endian. Only reported for buffers
	// that carry a BOM.
	UTF16BE

	// UTF16LE is UTF-16, little-endian. Only reported for buffers
	// that carry a BOM.
	UTF16LE

	// UTF32BE is UTF-32, big-endian (BOM-bearing only).
	UTF32BE

	// UTF32LE is UTF-32, little-endian (BOM-bearing only).
	UTF32LE

	// UTF7 is UTF-7, recognized by its "+/v" signature.
	UTF7

	// ASCII is 7-bit clean text containing no ESC bytes.
	ASCII

	// ISO2022JP is ISO-2022-JP, aka JIS.
	ISO2022JP

	// ShiftJIS is Shift_JIS / CP932.
	ShiftJIS

	// EUCJP is EUC-JP.
	EUCJP
)

type detectCtx struct {
	input  []byte
	cursor *strcursor.ByteCursor
}

type kanjiCharset struct {
	enc  Encoding
	name string
}
