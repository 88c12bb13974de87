package pixfmt

// solidImage is an image made up entirely of a single color, synthesized
// on demand with no backing buffer.
type solidImage struct {
	width  int
	height int

	bytesPerScanline int
	repeat           bool

	pixel Pixel
}

func (s *solidImage) Format() Format         { return s.pixel.Format() }
func (s *solidImage) Endianness() Endianness { return s.pixel.Endianness() }
func (s *solidImage) BytesPerScanline() int  { return s.bytesPerScanline }

func (s *solidImage) Dimensions() (int, int) {
	return s.width, s.height
}

func (s *solidImage) Scanline(x, y int, dst []byte) int {
	if y < 0 || (y >= s.height && !s.repeat) {
		return 0
	}

	if !s.repeat {
		// Clamp to what remains of the line from x onward.
		available := s.bytesPerScanline - x*s.pixel.Format().BitsPerPixel()/8
		if available < 0 {
			available = 0
		}
		if len(dst) > available {
			dst = dst[:available]
		}
	}
	return s.pixel.FillRow(dst)
}

// SetScanline is unsupported on a solid image; GeneralImage upgrades to a
// buffered copy before writing.
func (s *solidImage) SetScanline(x, y int, src []byte) int {
	return 0
}
