package palette

import (
	"errors"
	"fmt"
)

// ErrInvalidColorFormat is matched by every InvalidColorFormatError via errors.Is
var ErrInvalidColorFormat = errors.New("invalid color format")

// InvalidColorFormatError reports text that could not be read as a #RRGGBB color
type InvalidColorFormatError struct {
	Input  string
	Reason string
}

func (e *InvalidColorFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid color format %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid color format %q", e.Input)
}

func (e *InvalidColorFormatError) Is(target error) bool {
	return target == ErrInvalidColorFormat
}
