package chardet

// String returns a display label for the encoding. Satisfies
// fmt.Stringer.
func (e Encoding) String() string {
	switch e {
	case UTF8N:
		return "UTF-8"
	case UTF8:
		return "UTF-8 (BOM)"
	case UTF16BE:
		return "UTF-16BE"
	case UTF16LE:
		return "UTF-16LE"
	case UTF32BE:
		return "UTF-32BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF7:
		return "UTF-7"
	case ASCII:
		return "US-ASCII"
	case ISO2022JP:
		return "ISO-2022-JP"
	case ShiftJIS:
		return "Shift_JIS"
	case EUCJP:
		return "EUC-JP"
	}
	return "unknown"
}

// Name returns the charset name understood by the encoding subpackage.
func (e Encoding) Name() string {
	switch e {
	case UTF8N, UTF8:
		return "utf-8"
	case UTF16BE:
		return "utf-16be"
	case UTF16LE:
		return "utf-16le"
	case UTF32BE:
		return "utf-32be"
	case UTF32LE:
		return "utf-32le"
	case UTF7:
		return "utf-7"
	case ASCII:
		return "us-ascii"
	case ISO2022JP:
		return "iso-2022-jp"
	case ShiftJIS:
		return "shift_jis"
	case EUCJP:
		return "euc-jp"
	}
	return ""
}

// HasBOM reports whether a buffer detected as e starts with a byte
// order mark.
func (e Encoding) HasBOM() bool {
	return e.BOMSize() > 0
}

// BOMSize returns the length in bytes of the BOM implied by e, or 0
// for BOM-less encodings.
func (e Encoding) BOMSize() int {
	switch e {
	case UTF8:
		return 3
	case UTF16BE, UTF16LE:
		return 2
	case UTF32BE, UTF32LE:
		return 4
	}
	return 0
}
