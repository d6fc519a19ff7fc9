package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned when a font name has not been registered.
	ErrUnknownFont = errors.New("text: unknown font")
)

// FontError represents a font that could not be parsed or read.
type FontError struct {
	Font   string
	Reason string
	Err    error
}

func (e *FontError) Error() string {
	msg := "text: " + e.Font + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FontError) Unwrap() error { return e.Err }
