// Package pixfmt is a pixel-format codec: it decodes raw bytes into
// logical color-channel values and re-encodes channel values into raw
// bytes of any compatible format.
//
// # Overview
//
// A [Format] declaratively describes how a pixel is bit-packed: channel
// order, per-channel bit width, total bits per pixel. A [Pixel] is one
// decoded pixel, carrying its format and [Endianness]; it can report its
// [ChannelValue] per channel, be transcoded to any other format, and be
// written back into storage bytes. Sub-byte formats (1 and 4 bits per
// pixel) are addressed by a bit offset within their containing byte, and
// writes preserve the neighboring pixels packed into the same byte.
//
//	// decode a pixel, transcode it, write it back
//	px := pixfmt.NewPixel(raw, pixfmt.NativeEndianness, pixfmt.FormatARGB32)
//	px = px.ToFormat(pixfmt.NativeEndianness, pixfmt.FormatRGB24)
//	px.Insert(dst)
//
// Every type is an immutable-by-convention value and every operation is a
// pure function of its inputs, so the codec is safe to use from any
// number of goroutines with no synchronization, and fits inside tight,
// allocation-free per-pixel loops.
//
// # Images
//
// The [Image] interface and [GeneralImage] provide scanline-oriented
// storage on top of the codec: buffer-backed images, zero-allocation
// solid colors that upgrade to a buffered copy when written to, and
// repeat (tiling) address wrap. [ToImage] and [FromImage] bridge to the
// standard library image model.
//
// # GPU interop
//
// [Format.TextureFormat] maps the standard formats onto WebGPU texture
// formats for upload by a GPU backend.
package pixfmt
