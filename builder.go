package pixfmt

// Builder constructs GeneralImages. Obtain one from BufferBuilder,
// SolidColorBuilder or SolidPixelBuilder, chain options, then call Finish.
type Builder struct {
	width  int
	height int

	bytesPerScanline int
	repeat           bool

	// variant
	solid   bool
	pixel   Pixel
	storage []byte
	format  Format
	endian  Endianness
}

// BufferBuilder starts building an image that wraps a caller-provided
// byte buffer.
func BufferBuilder(width, height int, format Format, storage []byte) *Builder {
	return &Builder{
		width:            width,
		height:           height,
		bytesPerScanline: scanlineBytes(width, format),
		storage:          storage,
		format:           format,
		endian:           NativeEndianness,
	}
}

// SolidPixelBuilder starts building an image made up entirely of the
// given pixel.
func SolidPixelBuilder(width, height int, pixel Pixel) *Builder {
	return &Builder{
		width:            width,
		height:           height,
		bytesPerScanline: scanlineBytes(width, pixel.Format()),
		solid:            true,
		pixel:            pixel,
		format:           pixel.Format(),
		endian:           pixel.Endianness(),
	}
}

// SolidColorBuilder starts building a solid-color image of the given
// color, encoded in the given format.
func SolidColorBuilder(width, height int, format Format, color RGBA) *Builder {
	return SolidPixelBuilder(width, height, PixelFromRGBA(color, format, NativeEndianness))
}

// WithBytesPerScanline overrides the number of bytes per scanline, for
// systems that expect per-line padding. The value must fit a full row of
// pixels and stay pixel-aligned; Finish rejects it otherwise.
func (b *Builder) WithBytesPerScanline(value int) *Builder {
	b.bytesPerScanline = value
	return b
}

// WithEndianness selects a byte order for the image.
func (b *Builder) WithEndianness(endian Endianness) *Builder {
	b.endian = endian
	if b.solid {
		b.pixel = b.pixel.ToFormat(endian, b.pixel.Format())
	}
	return b
}

// WithRepeat makes out-of-range addresses wrap back into the image, for
// tiling.
func (b *Builder) WithRepeat() *Builder {
	b.repeat = true
	return b
}

// Finish validates the configuration and builds the image.
func (b *Builder) Finish() (*GeneralImage, error) {
	if b.width <= 0 || b.height <= 0 {
		return nil, ErrInvalidDimensions
	}

	minStride := scanlineBytes(b.width, b.format)
	if b.bytesPerScanline < minStride || b.bytesPerScanline%b.format.Bytes() != 0 {
		return nil, ErrInvalidStride
	}

	if b.solid {
		return &GeneralImage{innards: &solidImage{
			width:            b.width,
			height:           b.height,
			bytesPerScanline: b.bytesPerScanline,
			repeat:           b.repeat,
			pixel:            b.pixel,
		}}, nil
	}

	if len(b.storage) < b.bytesPerScanline*b.height {
		return nil, ErrBufferTooSmall
	}
	return &GeneralImage{innards: &bitsImage{
		width:            b.width,
		height:           b.height,
		format:           b.format,
		endian:           b.endian,
		bytesPerScanline: b.bytesPerScanline,
		repeat:           b.repeat,
		storage:          b.storage,
	}}, nil
}

// scanlineBytes returns the minimum number of bytes one scanline needs.
func scanlineBytes(width int, format Format) int {
	return divideRoundingUp(width*format.BitsPerPixel(), 8)
}
