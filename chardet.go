package chardet

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/transform"

	"github.com/lestrrat-go/chardet/encoding"
)

// Detect inspects data and returns the most likely text encoding.
// It always returns a label: a buffer that matches nothing falls back
// to UTF-8 without a BOM. Detect keeps no state between calls and is
// safe to call concurrently on independent buffers.
func Detect(ctx context.Context, data []byte, options ...DetectOption) Encoding {
	dctx := &detectCtx{}
	dctx.init(data, options...)
	defer dctx.release()

	return dctx.detect(ctx)
}

// DetectFile reads the file at path and runs Detect on its contents.
func DetectFile(ctx context.Context, path string, options ...DetectOption) (Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return UTF8N, errors.Wrapf(err, `failed to read %s`, path)
	}

	return Detect(ctx, data, options...), nil
}

// Decode detects the encoding of data and converts it to UTF-8,
// stripping any BOM. The detected encoding is returned alongside the
// converted bytes. UTF-7 is detected but cannot be decoded, and yields
// ErrUnsupportedEncoding.
func Decode(ctx context.Context, data []byte, options ...DetectOption) ([]byte, Encoding, error) {
	detected := Detect(ctx, data, options...)

	trimmed := data[detected.BOMSize():]
	switch detected {
	case UTF8N, UTF8, ASCII:
		return trimmed, detected, nil
	}

	e := encoding.Load(detected.Name())
	if e == nil {
		return nil, detected, errors.Wrapf(ErrUnsupportedEncoding, `cannot decode %s`, detected)
	}

	converted, _, err := transform.Bytes(e.NewDecoder(), trimmed)
	if err != nil {
		return nil, detected, ErrDecodeError{Encoding: detected, Err: err}
	}

	return converted, detected, nil
}
