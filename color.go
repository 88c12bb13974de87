package pixfmt

// RGBA is a 16-bit-per-channel color tuple. It is never encoded into an
// image directly; it is the convenient input for building pixels of any
// format, such as solid colors.
type RGBA struct {
	// R is the red component of the color.
	R uint16
	// G is the green component of the color.
	G uint16
	// B is the blue component of the color.
	B uint16
	// A is the alpha component of the color.
	A uint16
}

// channelValues returns the four channel values of this color, scaled
// down to the normalized 0..255 range.
func (c RGBA) channelValues() [4]ChannelValue {
	return [4]ChannelValue{
		NewChannelValue(ChannelAlpha, uint8(c.A>>8)),
		NewChannelValue(ChannelRed, uint8(c.R>>8)),
		NewChannelValue(ChannelGreen, uint8(c.G>>8)),
		NewChannelValue(ChannelBlue, uint8(c.B>>8)),
	}
}

// PixelFromRGBA encodes a color as a pixel of the given format.
func PixelFromRGBA(c RGBA, format Format, endian Endianness) Pixel {
	values := c.channelValues()
	return CollectChannels(endian, format, values[:]...)
}
