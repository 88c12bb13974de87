package pixfmt

// Image is a byte-oriented two-dimensional array of pixels. It does not
// expose its backing buffer directly, which lets non-buffer images (for
// instance a solid color) satisfy it without allocating.
type Image interface {
	// Format describes how the bytes of the image are interpreted.
	Format() Format

	// Endianness is the byte order of pixels wider than one byte.
	Endianness() Endianness

	// Dimensions returns the logical width and height of the image.
	// The height is the number of scanlines; the width is the number of
	// pixels per scanline.
	Dimensions() (width, height int)

	// BytesPerScanline returns the number of bytes in one scanline,
	// including any padding. It must be a multiple of the pixel size.
	BytesPerScanline() int

	// Scanline fills dst with bytes from scanline y starting at pixel x,
	// and returns the number of bytes written. The first byte of dst
	// contains the pixel at x; for sub-byte formats the pixel must be
	// located within that byte by its bit offset.
	Scanline(x, y int, dst []byte) int

	// SetScanline stores bytes into scanline y starting at pixel x, and
	// returns the number of bytes consumed.
	SetScanline(x, y int, src []byte) int
}

// subByteIndex returns the bit offset of pixel x within its byte.
func subByteIndex(f Format, x int) uint8 {
	switch f.BitsPerPixel() {
	case 1:
		return uint8(x % 8)
	case 4:
		return uint8(x%2) * 4
	default:
		return 0
	}
}

// PixelAt fetches the pixel at the given location.
func PixelAt(img Image, x, y int) Pixel {
	f := img.Format()
	var buf [16]byte
	img.Scanline(x, y, buf[:f.Bytes()])
	return NewPixelAt(buf[:f.Bytes()], subByteIndex(f, x), img.Endianness(), f)
}

// SetPixelAt stores a pixel at the given location. The pixel is converted
// to the image's format and endianness first, so pixels of any format can
// be stored into any image.
func SetPixelAt(img Image, x, y int, p Pixel) {
	f := img.Format()
	p = p.ToFormat(img.Endianness(), f)

	// Sub-byte pixels must land on x's bit offset within the byte, which
	// is not necessarily the offset they were decoded at.
	if f.SubByte() {
		p = p.atIndex(subByteIndex(f, x))
	}

	var buf [16]byte
	cnt := f.Bytes()
	img.Scanline(x, y, buf[:cnt])
	p.Insert(buf[:cnt])
	img.SetScanline(x, y, buf[:cnt])
}

// atIndex re-homes a sub-byte pixel to a different bit offset within its
// containing byte.
func (p Pixel) atIndex(index uint8) Pixel {
	if p.float || p.index == index {
		return p
	}
	value := p.data >> p.index & lowBitMasks[p.format.BitsPerPixel()]
	p.data = value << index
	p.index = index
	return p
}

// divideRoundingUp divides a by b, rounding up.
func divideRoundingUp(a, b int) int {
	return (a + b - 1) / b
}
