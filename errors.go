package chardet

import "fmt"

// ErrDecodeError is returned by Decode when the conversion of a
// detected legacy encoding to UTF-8 fails.
type ErrDecodeError struct {
	Encoding Encoding
	Err      error
}

func (e ErrDecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s input: %s", e.Encoding, e.Err)
}

func (e ErrDecodeError) Unwrap() error {
	return e.Err
}
