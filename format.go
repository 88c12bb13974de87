package pixfmt

import "fmt"

// Format describes how a single pixel is bit-packed: the total bits per
// pixel, the order of the color channels, and the bit width of each channel.
//
// Format is a small copy value type. Standard formats are available as
// package variables (FormatARGB32, FormatRGB24, FormatA8, ...), and custom
// formats can be built with NewFormat:
//
//	// a 32-bit RGBA format with 8 bits per channel
//	rgba32 := pixfmt.NewFormat(32, ColorTypeRGBA, 8, 8, 8, 8)
//
// Only red, green, blue and alpha channels are supported.
type Format struct {
	// bpp is the total number of bits used to encode one pixel.
	bpp uint8
	// colorType fixes the channel order and float-ness.
	colorType ColorType
	// channels holds the four channel bit widths, one nibble each.
	channels channelWidths
}

// Standard formats.
var (
	// FormatARGB32 is 32-bit ARGB with 8 bits per channel.
	FormatARGB32 = NewFormat(32, ColorTypeARGB, 8, 8, 8, 8)
	// FormatXRGB32 is 32-bit RGB with 8 bits per channel and no alpha.
	FormatXRGB32 = NewFormat(32, ColorTypeARGB, 0, 8, 8, 8)
	// FormatABGR32 is 32-bit ABGR with 8 bits per channel.
	FormatABGR32 = NewFormat(32, ColorTypeABGR, 8, 8, 8, 8)
	// FormatXBGR32 is 32-bit BGR with 8 bits per channel and no alpha.
	FormatXBGR32 = NewFormat(32, ColorTypeABGR, 0, 8, 8, 8)
	// FormatRGBA32 is 32-bit RGBA with 8 bits per channel.
	FormatRGBA32 = NewFormat(32, ColorTypeRGBA, 8, 8, 8, 8)
	// FormatRGBX32 is 32-bit RGB with 8 bits per channel and no alpha.
	FormatRGBX32 = NewFormat(32, ColorTypeRGBA, 0, 8, 8, 8)
	// FormatBGRA32 is 32-bit BGRA with 8 bits per channel.
	FormatBGRA32 = NewFormat(32, ColorTypeBGRA, 8, 8, 8, 8)
	// FormatBGRX32 is 32-bit BGR with 8 bits per channel and no alpha.
	FormatBGRX32 = NewFormat(32, ColorTypeBGRA, 0, 8, 8, 8)

	// FormatRGB24 is 24-bit RGB with 8 bits per channel.
	FormatRGB24 = NewFormat(24, ColorTypeARGB, 0, 8, 8, 8)
	// FormatBGR24 is 24-bit BGR with 8 bits per channel.
	FormatBGR24 = NewFormat(24, ColorTypeABGR, 0, 8, 8, 8)

	// FormatARGB16 is 16-bit ARGB with 4 bits per channel.
	FormatARGB16 = NewFormat(16, ColorTypeARGB, 4, 4, 4, 4)
	// FormatXRGB16 is 16-bit RGB with 4 bits per channel and no alpha.
	FormatXRGB16 = NewFormat(16, ColorTypeARGB, 0, 4, 4, 4)
	// FormatABGR16 is 16-bit ABGR with 4 bits per channel.
	FormatABGR16 = NewFormat(16, ColorTypeABGR, 4, 4, 4, 4)
	// FormatXBGR16 is 16-bit BGR with 4 bits per channel and no alpha.
	FormatXBGR16 = NewFormat(16, ColorTypeABGR, 0, 4, 4, 4)

	// FormatA8 is an 8-bit alpha-only format.
	FormatA8 = NewFormat(8, ColorTypeAlpha, 8, 0, 0, 0)
	// FormatA4 is a 4-bit alpha-only format (two pixels per byte).
	FormatA4 = NewFormat(4, ColorTypeAlpha, 4, 0, 0, 0)
	// FormatA1 is a 1-bit alpha-only format (eight pixels per byte).
	FormatA1 = NewFormat(1, ColorTypeAlpha, 1, 0, 0, 0)

	// FormatARGBF32 is ARGB with one 32-bit float per channel.
	FormatARGBF32 = NewFormat(32*4, ColorTypeARGBFloat, 32, 32, 32, 32)
	// FormatRGBF32 is RGB with one 32-bit float per channel.
	FormatRGBF32 = NewFormat(32*3, ColorTypeARGBFloat, 0, 32, 32, 32)
)

// NewFormat creates a format with the given bits per pixel, color type and
// per-channel bit widths.
//
// Valid bpp values are 1, 4, 8, 16, 24, 32, 96 and 128; any other value is
// rounded up to the next valid entry. Valid channel widths are 0 through 8,
// 10, 16 and 32; any other width is a caller error and panics.
//
// For float color types every present channel width must be 32. This is a
// caller contract and is not validated here.
func NewFormat(bpp int, colorType ColorType, alphaBits, redBits, greenBits, blueBits int) Format {
	return Format{
		bpp:       roundBitsPerPixel(bpp),
		colorType: colorType,
		channels:  newChannelWidths(alphaBits, redBits, greenBits, blueBits),
	}
}

func roundBitsPerPixel(bpp int) uint8 {
	switch {
	case bpp <= 1:
		return 1
	case bpp <= 4:
		return 4
	case bpp <= 8:
		return 8
	case bpp <= 16:
		return 16
	case bpp <= 24:
		return 24
	case bpp <= 32:
		return 32
	case bpp <= 96:
		return 96
	default:
		return 128
	}
}

// BitsPerPixel returns the total number of bits used to encode one pixel.
func (f Format) BitsPerPixel() int {
	return int(f.bpp)
}

// Bytes returns the number of bytes required to encode one pixel.
// Sub-byte formats still occupy one byte.
func (f Format) Bytes() int {
	switch f.bpp {
	case 1, 4:
		return 1
	default:
		return int(f.bpp) / 8
	}
}

// SubByte reports whether a pixel of this format is narrower than a byte.
func (f Format) SubByte() bool {
	return f.bpp < 8
}

// ColorType returns the channel order for this format.
func (f Format) ColorType() ColorType {
	return f.colorType
}

// InvolvesFloat reports whether pixels of this format store 32-bit floats.
func (f Format) InvolvesFloat() bool {
	return f.colorType.InvolvesFloat()
}

// AlphaBits returns the number of bits used by the alpha channel.
func (f Format) AlphaBits() int { return f.channels.alpha() }

// RedBits returns the number of bits used by the red channel.
func (f Format) RedBits() int { return f.channels.red() }

// GreenBits returns the number of bits used by the green channel.
func (f Format) GreenBits() int { return f.channels.green() }

// BlueBits returns the number of bits used by the blue channel.
func (f Format) BlueBits() int { return f.channels.blue() }

// ChannelBits returns the number of bits used by the given channel.
// A width of zero means the channel is absent.
func (f Format) ChannelBits(ch Channel) int {
	switch ch {
	case ChannelAlpha:
		return f.AlphaBits()
	case ChannelRed:
		return f.RedBits()
	case ChannelGreen:
		return f.GreenBits()
	case ChannelBlue:
		return f.BlueBits()
	default:
		return 0
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	return fmt.Sprintf("Format(%d, %s, a:%d r:%d g:%d b:%d)",
		f.bpp, f.colorType, f.AlphaBits(), f.RedBits(), f.GreenBits(), f.BlueBits())
}

// ColorType defines the set of channels present in a pixel and the order
// that they appear in.
type ColorType uint8

const (
	// ColorTypeARGB is a packed ARGB tuple.
	ColorTypeARGB ColorType = iota
	// ColorTypeRGBA is a packed RGBA tuple.
	ColorTypeRGBA
	// ColorTypeABGR is a packed ABGR tuple.
	ColorTypeABGR
	// ColorTypeBGRA is a packed BGRA tuple.
	ColorTypeBGRA
	// ColorTypeAlpha is a single alpha channel.
	ColorTypeAlpha
	// ColorTypeARGBFloat is an ARGB tuple of 32-bit floats.
	//
	// This implies that every present channel is 32 bits wide. Violating
	// that may lead to rounding or panics, but never memory corruption.
	ColorTypeARGBFloat
)

var (
	orderARGB  = [4]Channel{ChannelAlpha, ChannelRed, ChannelGreen, ChannelBlue}
	orderRGBA  = [4]Channel{ChannelRed, ChannelGreen, ChannelBlue, ChannelAlpha}
	orderABGR  = [4]Channel{ChannelAlpha, ChannelBlue, ChannelGreen, ChannelRed}
	orderBGRA  = [4]Channel{ChannelBlue, ChannelGreen, ChannelRed, ChannelAlpha}
	orderAlpha = [1]Channel{ChannelAlpha}
)

// order returns the channels of this color type in the order they appear
// within a packed pixel. Alpha-only formats have a single entry.
func (ct ColorType) order() []Channel {
	switch ct {
	case ColorTypeARGB, ColorTypeARGBFloat:
		return orderARGB[:]
	case ColorTypeRGBA:
		return orderRGBA[:]
	case ColorTypeABGR:
		return orderABGR[:]
	case ColorTypeBGRA:
		return orderBGRA[:]
	case ColorTypeAlpha:
		return orderAlpha[:]
	default:
		return nil
	}
}

// InvolvesFloat reports whether this color type stores 32-bit floats.
func (ct ColorType) InvolvesFloat() bool {
	return ct == ColorTypeARGBFloat
}

// String returns a string representation of the color type.
func (ct ColorType) String() string {
	switch ct {
	case ColorTypeARGB:
		return "ARGB"
	case ColorTypeRGBA:
		return "RGBA"
	case ColorTypeABGR:
		return "ABGR"
	case ColorTypeBGRA:
		return "BGRA"
	case ColorTypeAlpha:
		return "Alpha"
	case ColorTypeARGBFloat:
		return "ARGBFloat"
	default:
		return "Unknown"
	}
}

// Channel identifies one color channel of a pixel.
type Channel uint8

const (
	// ChannelRed is the red channel.
	ChannelRed Channel = iota
	// ChannelGreen is the green channel.
	ChannelGreen
	// ChannelBlue is the blue channel.
	ChannelBlue
	// ChannelAlpha is the alpha channel.
	ChannelAlpha
)

// String returns a string representation of the channel.
func (ch Channel) String() string {
	switch ch {
	case ChannelRed:
		return "Red"
	case ChannelGreen:
		return "Green"
	case ChannelBlue:
		return "Blue"
	case ChannelAlpha:
		return "Alpha"
	default:
		return "Unknown"
	}
}

// channelWidths packs the four channel bit widths into one 16-bit word,
// one 4-bit code per channel. Real widths 0..8 map to themselves; 10, 16
// and 32 map to the codes 9, 10 and 11.
type channelWidths uint16

const (
	alphaWidthShift = 12
	redWidthShift   = 8
	greenWidthShift = 4
	blueWidthShift  = 0
	widthCodeMask   = 0x0f
)

func newChannelWidths(alpha, red, green, blue int) channelWidths {
	return channelWidths(
		packChannelWidth(alpha)<<alphaWidthShift |
			packChannelWidth(red)<<redWidthShift |
			packChannelWidth(green)<<greenWidthShift |
			packChannelWidth(blue)<<blueWidthShift)
}

// packChannelWidth converts a real channel bit width to its 4-bit code.
func packChannelWidth(bits int) uint16 {
	switch {
	case bits >= 0 && bits <= 8:
		return uint16(bits)
	case bits == 10:
		return 9
	case bits == 16:
		return 10
	case bits == 32:
		return 11
	default:
		panic(fmt.Sprintf("pixfmt: invalid channel width %d (valid: 0..8, 10, 16, 32)", bits))
	}
}

// unpackChannelWidth converts a 4-bit code back to the real bit width.
func unpackChannelWidth(code uint16) int {
	switch {
	case code <= 8:
		return int(code)
	case code == 9:
		return 10
	case code == 10:
		return 16
	case code == 11:
		return 32
	default:
		panic(fmt.Sprintf("pixfmt: invalid channel width code %d", code))
	}
}

func (c channelWidths) alpha() int {
	return unpackChannelWidth(uint16(c) >> alphaWidthShift & widthCodeMask)
}

func (c channelWidths) red() int {
	return unpackChannelWidth(uint16(c) >> redWidthShift & widthCodeMask)
}

func (c channelWidths) green() int {
	return unpackChannelWidth(uint16(c) >> greenWidthShift & widthCodeMask)
}

func (c channelWidths) blue() int {
	return unpackChannelWidth(uint16(c) >> blueWidthShift & widthCodeMask)
}
