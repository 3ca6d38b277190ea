package chardet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lestrrat-go/chardet/encoding"
)

func TestValidUTF8(t *testing.T) {
	data := []struct {
		Name   string
		Input  []byte
		Expect bool
	}{
		{
			Name:   "three byte sequences",
			Input:  []byte{0xE3, 0x81, 0x82, 0xE3, 0x81, 0x84},
			Expect: true,
		},
		{
			Name:   "ascii mixed with multibyte",
			Input:  []byte{'a', 0xC3, 0xA9, 'b'},
			Expect: true,
		},
		{
			// no multibyte sequence to claim; this belongs to the
			// ascii stage
			Name:   "pure ascii",
			Input:  []byte("abc"),
			Expect: false,
		},
		{
			// lone continuation bytes are skipped, not rejected, but
			// they do not count as multibyte hits either
			Name:   "lone continuation bytes only",
			Input:  []byte{0x82, 0xA0},
			Expect: false,
		},
		{
			Name:   "lone continuation byte before a valid sequence",
			Input:  []byte{0x82, 0xE3, 0x81, 0x82},
			Expect: true,
		},
		{
			Name:   "bad continuation byte",
			Input:  []byte{0xC3, 0x28},
			Expect: false,
		},
		{
			Name:   "truncated sequence at end",
			Input:  []byte{0xE3, 0x81},
			Expect: false,
		},
		{
			Name:   "empty",
			Input:  nil,
			Expect: false,
		},
	}

	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			ctx := &detectCtx{}
			ctx.init(d.Input)
			defer ctx.release()

			if !assert.Equal(t, d.Expect, ctx.validUTF8(), `validUTF8 should match`) {
				return
			}
		})
	}
}

func TestValidASCII(t *testing.T) {
	data := []struct {
		Name   string
		Input  []byte
		Expect bool
	}{
		{"printable ascii", []byte("Hello, World!\n"), true},
		{"escape byte", []byte{'a', 0x1B, 'b'}, false},
		{"high bit set", []byte{'a', 0x80}, false},
		{"empty", nil, false},
	}

	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			ctx := &detectCtx{}
			ctx.init(d.Input)
			defer ctx.release()

			if !assert.Equal(t, d.Expect, ctx.validASCII(), `validASCII should match`) {
				return
			}
		})
	}
}

func TestCountMultibyte(t *testing.T) {
	// 日本語 in Shift_JIS
	input := []byte{0x93, 0xFA, 0x96, 0x7B, 0x8C, 0xEA}

	ctx := &detectCtx{}
	ctx.init(input)
	defer ctx.release()

	sjis := ctx.countMultibyte(encoding.Load("shift_jis"))
	if !assert.GreaterOrEqual(t, sjis, 3, `shift_jis should score every character`) {
		return
	}

	euc := ctx.countMultibyte(encoding.Load("euc-jp"))
	if !assert.Equal(t, 0, euc, `euc-jp should not score`) {
		return
	}

	if !assert.Equal(t, 0, ctx.countMultibyte(nil), `nil encoding should not score`) {
		return
	}
}

func TestDetectBOMGuards(t *testing.T) {
	// prefixes shorter than any pattern must not match anything
	for _, in := range [][]byte{nil, {0xEF}, {0xEF, 0xBB}, {0xFF}, {0x00, 0x00, 0xFE}} {
		ctx := &detectCtx{}
		ctx.init(in)

		_, ok := ctx.detectBOM()
		if !assert.False(t, ok, `no BOM should match a short prefix`) {
			return
		}
		ctx.release()
	}
}
