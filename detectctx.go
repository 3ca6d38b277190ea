package chardet

import (
	"bytes"
	"context"
	"log/slog"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/lestrrat-go/strcursor"
	enc "golang.org/x/text/encoding"

	"github.com/lestrrat-go/chardet/encoding"
	"github.com/lestrrat-go/chardet/internal/debug"
)

// BOM / signature patterns. The 4-byte patterns must be tested before
// the 2-byte ones: FF FE 00 00 (UTF-32LE) starts with FF FE (UTF-16LE)
var (
	patUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	patUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	patUTF7    = []byte{0x2B, 0x2F, 0x76}
	patUTF8    = []byte{0xEF, 0xBB, 0xBF}
	patUTF16BE = []byte{0xFE, 0xFF}
	patUTF16LE = []byte{0xFF, 0xFE}
)

// bytes that may complete the 3-byte UTF-7 signature
var utf7Tails = []byte{0x38, 0x39, 0x2B, 0x2F}

// checked in this order; on equal counts the earlier charset wins
var kanjiCharsets = []kanjiCharset{
	{ISO2022JP, "iso-2022-jp"},
	{ShiftJIS, "shift_jis"},
	{EUCJP, "euc-jp"},
}

func (ctx *detectCtx) init(b []byte, options ...DetectOption) {
	var limit int
	for _, o := range options {
		switch o.Ident() {
		case identScanLimit{}:
			limit = o.Value().(int)
		}
	}
	if limit > 0 && len(b) > limit {
		b = b[:limit]
	}

	ctx.input = b
	ctx.cursor = strcursor.NewByteCursor(bytes.NewReader(b))
}

func (ctx *detectCtx) release() {
	ctx.input = nil
	ctx.cursor = nil
}

func (ctx *detectCtx) curLen() int {
	return len(ctx.input)
}

func (ctx *detectCtx) curHasPrefix(pat []byte) bool {
	return ctx.cursor.HasPrefix(pat)
}

func (ctx *detectCtx) detect(octx context.Context) Encoding {
	tlog := getTraceLogFromContext(octx)

	if e, ok := ctx.detectBOM(); ok {
		tlog.Debug("matched BOM/signature", slog.String("encoding", e.String()))
		return e
	}

	if ctx.validUTF8() {
		tlog.Debug("strict UTF-8 validation passed")
		return UTF8N
	}

	if ctx.validASCII() {
		tlog.Debug("ASCII validation passed")
		return ASCII
	}

	return ctx.detectKanji(tlog)
}

// detectBOM tests the buffer prefix against the BOM and signature
// patterns, longest first. Each probe is length-guarded so we never
// read past the end of short buffers.
func (ctx *detectCtx) detectBOM() (Encoding, bool) {
	if debug.Enabled {
		debug.Printf("START detectBOM")
		defer debug.Printf("END   detectBOM")
	}

	if ctx.curLen() >= 4 {
		if ctx.curHasPrefix(patUTF32BE) {
			return UTF32BE, true
		}

		if ctx.curHasPrefix(patUTF32LE) {
			return UTF32LE, true
		}

		if ctx.curHasPrefix(patUTF7) && bytes.IndexByte(utf7Tails, ctx.input[3]) >= 0 {
			return UTF7, true
		}
	}

	if ctx.curLen() >= 3 {
		if ctx.curHasPrefix(patUTF8) {
			return UTF8, true
		}
	}

	if ctx.curLen() >= 2 {
		if ctx.curHasPrefix(patUTF16BE) {
			return UTF16BE, true
		}

		if ctx.curHasPrefix(patUTF16LE) {
			return UTF16LE, true
		}
	}

	return UTF8N, false
}

// validUTF8 reports whether the buffer decomposes into valid UTF-8
// sequences and contains at least one multi-byte sequence. A byte
// that matches no lead pattern (a lone continuation byte, or 0xF8 and
// above) is skipped as a single byte rather than rejected. A declared
// multi-byte sequence must have every continuation byte match
// 10xxxxxx, and must not run past the end of the buffer.
//
// Requiring a multi-byte hit keeps 7-bit-only buffers out of this
// stage: those belong to validASCII, or to the kanji scorer when they
// contain ISO-2022 escapes.
func (ctx *detectCtx) validUTF8() bool {
	buf := ctx.input
	var hits int
	for i := 0; i < len(buf); {
		var trail int
		switch c := buf[i]; {
		case c&0x80 == 0:
			trail = 0
		case c&0xE0 == 0xC0:
			trail = 1
		case c&0xF0 == 0xE0:
			trail = 2
		case c&0xF8 == 0xF0:
			trail = 3
		default:
			// not a lead byte, skip it
			trail = 0
		}

		if trail > 0 && i+trail >= len(buf) {
			// truncated sequence at the end of the buffer
			return false
		}
		for j := 1; j <= trail; j++ {
			if buf[i+j]&0xC0 != 0x80 {
				return false
			}
		}
		if trail > 0 {
			hits++
		}
		i += trail + 1
	}
	return hits > 0
}

// validASCII reports whether the buffer is 7-bit clean. ESC (0x1B) is
// rejected so that ISO-2022 escape sequences reach the kanji scorer.
// An empty buffer claims nothing and falls through to the final
// default. Must run after the Unicode checks.
func (ctx *detectCtx) validASCII() bool {
	if len(ctx.input) == 0 {
		return false
	}
	for _, c := range ctx.input {
		if c == 0x1B || c >= 0x80 {
			return false
		}
	}
	return true
}

// detectKanji counts plausible 2-byte characters under each legacy
// Japanese charset and picks the highest count. When every charset
// scores zero the result is UTF-8 without BOM, which keeps Detect
// total.
func (ctx *detectCtx) detectKanji(tlog *slog.Logger) Encoding {
	best := UTF8N
	var bestCount int
	for _, cs := range kanjiCharsets {
		n := ctx.countMultibyte(encoding.Load(cs.name))
		if debug.Enabled {
			debug.Printf("charset %s scored %d", cs.name, n)
		}
		tlog.Debug("scored legacy charset", slog.String("charset", cs.name), slog.Int("count", n))

		if n > bestCount {
			best = cs.enc
			bestCount = n
		}
	}
	return best
}

// countMultibyte slides a 2-byte window over every position of the
// buffer and counts the windows that decode to exactly one
// non-surrogate character under e. A window that fails to decode is
// simply not counted. A hard error from the decoder marks the whole
// charset as a non-match, so the count is dropped to zero.
func (ctx *detectCtx) countMultibyte(e enc.Encoding) int {
	if e == nil {
		return 0
	}

	dec := e.NewDecoder()
	buf := ctx.input
	var count int
	for i := 0; i+1 < len(buf); i++ {
		decoded, err := dec.Bytes(buf[i : i+2])
		if err != nil {
			return 0
		}

		r, size := utf8.DecodeRune(decoded)
		if r == utf8.RuneError || size != len(decoded) {
			// zero, two or more characters, or a replacement rune:
			// not a multibyte hit
			continue
		}
		if utf16.IsSurrogate(r) {
			continue
		}
		count++
	}
	return count
}
