package pixfmt

// ToFormat converts this pixel to the same color in a new format and
// endianness. Converting to a lower-resolution format loses information.
//
// When the target format and endianness already match, the pixel is
// returned unchanged.
func (p Pixel) ToFormat(endian Endianness, format Format) Pixel {
	if p.format == format && p.endian == endian {
		return p
	}
	return CollectChannels(endian, format, p.ChannelValues()...)
}
