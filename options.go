package chardet

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identScanLimit struct{}

type DetectOption interface {
	Option
	detectOption()
}

type detectOption struct{ Option }

func (*detectOption) detectOption() {}

// WithScanLimit caps the number of bytes that Detect examines. Useful
// when probing the head of a large file is enough. Zero or a negative
// value means the whole buffer.
func WithScanLimit(v int) DetectOption {
	return &detectOption{option.New(identScanLimit{}, v)}
}
