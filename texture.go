package pixfmt

import "github.com/gogpu/gputypes"

// TextureFormat maps this format onto the WebGPU texture format a GPU
// backend would upload it as. Formats without a matching texture format
// return gputypes.TextureFormatUndefined.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatRGBA32:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA32:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatA8:
		return gputypes.TextureFormatR8Unorm
	case FormatARGBF32:
		return gputypes.TextureFormatRGBA32Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// FormatFromTexture returns the pixel format matching a WebGPU texture
// format, and whether the texture format is supported.
func FormatFromTexture(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA32, true
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA32, true
	case gputypes.TextureFormatR8Unorm:
		return FormatA8, true
	case gputypes.TextureFormatRGBA32Float:
		return FormatARGBF32, true
	default:
		return Format{}, false
	}
}
