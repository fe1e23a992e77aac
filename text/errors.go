package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrSourceClosed is returned when a face is requested from a closed source.
	ErrSourceClosed = errors.New("text: font source closed")
)

// InvalidSizeError is returned when a face is requested with a size that is
// not a positive finite number.
type InvalidSizeError struct {
	Size float64
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("text: invalid face size %v", e.Size)
}
