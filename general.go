package pixfmt

// imageInnards is the internal variant of a GeneralImage. Keeping the set
// of variants internal means adding one is not a breaking change.
type imageInnards interface {
	Image

	// writable reports whether SetScanline can store bytes directly.
	writable() bool
	// repeating reports whether addresses wrap instead of clamping.
	repeating() bool
}

func (b *bitsImage) writable() bool   { return true }
func (b *bitsImage) repeating() bool  { return b.repeat }
func (s *solidImage) writable() bool  { return false }
func (s *solidImage) repeating() bool { return s.repeat }

var (
	_ imageInnards = (*bitsImage)(nil)
	_ imageInnards = (*solidImage)(nil)
	_ Image        = (*GeneralImage)(nil)
)

// GeneralImage is a general-purpose Image covering the common cases: a
// view over a caller-provided byte buffer, an image-owned buffer, or a
// solid color that allocates nothing.
//
// Writing to a non-buffered image first upgrades it to an owned buffered
// copy.
type GeneralImage struct {
	innards imageInnards
}

// NewBufferImage creates an image that wraps a caller-provided byte
// buffer in native endianness.
func NewBufferImage(width, height int, format Format, buffer []byte) (*GeneralImage, error) {
	return BufferBuilder(width, height, format, buffer).Finish()
}

// NewSolidColorImage creates an image made up of a single solid color,
// with no backing buffer.
func NewSolidColorImage(width, height int, format Format, color RGBA) (*GeneralImage, error) {
	return SolidColorBuilder(width, height, format, color).Finish()
}

// Format implements Image.
func (g *GeneralImage) Format() Format { return g.innards.Format() }

// Endianness implements Image.
func (g *GeneralImage) Endianness() Endianness { return g.innards.Endianness() }

// Dimensions implements Image.
func (g *GeneralImage) Dimensions() (int, int) { return g.innards.Dimensions() }

// BytesPerScanline implements Image.
func (g *GeneralImage) BytesPerScanline() int { return g.innards.BytesPerScanline() }

// Repeat reports whether out-of-range addresses wrap back into the image.
func (g *GeneralImage) Repeat() bool { return g.innards.repeating() }

// Scanline implements Image.
func (g *GeneralImage) Scanline(x, y int, dst []byte) int {
	return g.innards.Scanline(x, y, dst)
}

// SetScanline implements Image. Writing to a non-buffered image upgrades
// it to an owned buffered copy first.
func (g *GeneralImage) SetScanline(x, y int, src []byte) int {
	if !g.innards.writable() {
		g.makeBuffered()
	}
	return g.innards.SetScanline(x, y, src)
}

// makeBuffered replaces the innards with an owned buffer holding a copy
// of the current pixels.
func (g *GeneralImage) makeBuffered() {
	width, height := g.innards.Dimensions()
	bps := g.innards.BytesPerScanline()

	Logger().Debug("pixfmt: upgrading image to buffered copy",
		"width", width, "height", height, "format", g.innards.Format().String())

	buffered := &bitsImage{
		width:            width,
		height:           height,
		format:           g.innards.Format(),
		endian:           g.innards.Endianness(),
		bytesPerScanline: bps,
		repeat:           g.innards.repeating(),
		storage:          make([]byte, bps*height),
	}

	line := make([]byte, bps)
	for y := 0; y < height; y++ {
		g.innards.Scanline(0, y, line)
		buffered.SetScanline(0, y, line)
	}

	g.innards = buffered
}
