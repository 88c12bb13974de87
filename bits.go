package pixfmt

// bitsImage stores all of its pixels in a byte buffer, like a traditional
// image.
type bitsImage struct {
	width  int
	height int
	format Format
	endian Endianness

	bytesPerScanline int

	// repeat wraps out-of-range addresses back into the image instead of
	// rejecting them, for tiling.
	repeat bool

	storage []byte
}

func (b *bitsImage) Format() Format         { return b.format }
func (b *bitsImage) Endianness() Endianness { return b.endian }
func (b *bitsImage) BytesPerScanline() int  { return b.bytesPerScanline }

func (b *bitsImage) Dimensions() (int, int) {
	return b.width, b.height
}

// reduceY wraps y into range when repeating, or reports that the scanline
// is out of bounds.
func (b *bitsImage) reduceY(y int) (int, bool) {
	if y < 0 {
		return 0, false
	}
	if y >= b.height {
		if !b.repeat {
			return 0, false
		}
		y %= b.height
	}
	return y, true
}

// position returns the byte range within storage covering length bytes of
// scanline y starting at pixel x, clamped to the scanline.
func (b *bitsImage) position(x, y, length int) (begin, end int) {
	lineStart := y * b.bytesPerScanline

	indexStart := x * b.format.BitsPerPixel() / 8
	if indexStart > b.bytesPerScanline {
		indexStart = b.bytesPerScanline
	}
	indexEnd := indexStart + length
	if indexEnd > b.bytesPerScanline {
		indexEnd = b.bytesPerScanline
	}

	return lineStart + indexStart, lineStart + indexEnd
}

func (b *bitsImage) Scanline(x, y int, dst []byte) int {
	y, ok := b.reduceY(y)
	if !ok {
		return 0
	}
	begin, end := b.position(x, y, len(dst))
	written := copy(dst, b.storage[begin:end])

	// When repeating, refill from the start of the same line until dst
	// is full.
	lineStart := y * b.bytesPerScanline
	for b.repeat && written < len(dst) {
		n := copy(dst[written:], b.storage[lineStart:lineStart+b.bytesPerScanline])
		written += n
	}
	return written
}

func (b *bitsImage) SetScanline(x, y int, src []byte) int {
	y, ok := b.reduceY(y)
	if !ok {
		return 0
	}
	begin, end := b.position(x, y, len(src))
	return copy(b.storage[begin:end], src)
}
