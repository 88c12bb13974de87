package pixfmt

import "errors"

// Common errors for image construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixfmt: invalid dimensions")

	// ErrInvalidStride is returned when a custom bytes-per-scanline value
	// is smaller than one row of pixels or not pixel-aligned.
	ErrInvalidStride = errors.New("pixfmt: bytes per scanline too small or misaligned")

	// ErrBufferTooSmall is returned when a backing buffer cannot hold the
	// requested image.
	ErrBufferTooSmall = errors.New("pixfmt: buffer too small for image")
)
