package pixfmt

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ToImage converts any Image into a standard library *image.NRGBA,
// transcoding every pixel through the codec. Formats without an alpha
// channel come out fully opaque.
func ToImage(img Image) *image.NRGBA {
	width, height := img.Dimensions()
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := PixelAt(img, x, y)
			out.SetNRGBA(x, y, pixelToNRGBA(px))
		}
	}
	return out
}

// pixelToNRGBA maps a pixel's channel values onto an 8-bit NRGBA color.
// An absent alpha channel means opaque.
func pixelToNRGBA(p Pixel) color.NRGBA {
	out := color.NRGBA{A: 0xFF}
	for _, cv := range p.ChannelValues() {
		switch cv.Channel() {
		case ChannelRed:
			out.R = cv.Value()
		case ChannelGreen:
			out.G = cv.Value()
		case ChannelBlue:
			out.B = cv.Value()
		case ChannelAlpha:
			out.A = cv.Value()
		}
	}
	return out
}

// ToImageScaled converts an Image into a standard *image.NRGBA resampled
// to the given dimensions.
func ToImageScaled(img Image, width, height int) *image.NRGBA {
	src := ToImage(img)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// FromImage encodes a standard library image into a freshly allocated
// buffered image of the given format and endianness. Encoding into a
// lower-resolution format loses information.
func FromImage(src image.Image, format Format, endian Endianness) (*GeneralImage, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buffer := make([]byte, scanlineBytes(width, format)*height)
	img, err := BufferBuilder(width, height, format, buffer).
		WithEndianness(endian).
		Finish()
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			px := PixelFromRGBA(RGBA{
				R: uint16(c.R) * 0x101,
				G: uint16(c.G) * 0x101,
				B: uint16(c.B) * 0x101,
				A: uint16(c.A) * 0x101,
			}, format, endian)
			SetPixelAt(img, x, y, px)
		}
	}
	return img, nil
}
