package pixfmt

import "testing"

// BenchmarkPixel_FillRow benchmarks filling scanlines of various widths.
func BenchmarkPixel_FillRow(b *testing.B) {
	widths := []struct {
		name   string
		pixels int
	}{
		{"64px", 64},
		{"512px", 512},
		{"1920px", 1920},
		{"4096px", 4096},
	}

	formats := []struct {
		name   string
		format Format
	}{
		{"A1", FormatA1},
		{"A8", FormatA8},
		{"RGB24", FormatRGB24},
		{"ARGB32", FormatARGB32},
	}

	for _, f := range formats {
		px := PixelFromRGBA(RGBA{R: 0xFFFF, A: 0xFFFF}, f.format, NativeEndianness)
		for _, w := range widths {
			row := make([]byte, scanlineBytes(w.pixels, f.format))
			b.Run(f.name+"_"+w.name, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					px.FillRow(row)
				}
				b.SetBytes(int64(len(row)))
			})
		}
	}
}

// BenchmarkPixel_RoundTrip benchmarks a decode-insert cycle per format.
func BenchmarkPixel_RoundTrip(b *testing.B) {
	formats := []struct {
		name   string
		format Format
	}{
		{"A8", FormatA8},
		{"ARGB16", FormatARGB16},
		{"RGB24", FormatRGB24},
		{"ARGB32", FormatARGB32},
		{"ARGBF32", FormatARGBF32},
	}

	for _, f := range formats {
		raw := make([]byte, f.format.Bytes())
		b.Run(f.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				px := NewPixel(raw, NativeEndianness, f.format)
				px.Insert(raw)
			}
			b.SetBytes(int64(len(raw)))
		})
	}
}

// BenchmarkPixel_ToFormat benchmarks transcoding between common formats.
func BenchmarkPixel_ToFormat(b *testing.B) {
	src := NewPixel([]byte{0x11, 0x22, 0x33, 0x44}, NativeEndianness, FormatARGB32)

	targets := []struct {
		name   string
		format Format
	}{
		{"RGBA32", FormatRGBA32},
		{"RGB24", FormatRGB24},
		{"A8", FormatA8},
		{"ARGBF32", FormatARGBF32},
	}

	for _, tt := range targets {
		b.Run("ARGB32_to_"+tt.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				px := src.ToFormat(NativeEndianness, tt.format)
				_ = px
			}
		})
	}
}

// BenchmarkImage_SetPixelAt benchmarks random-access writes.
func BenchmarkImage_SetPixelAt(b *testing.B) {
	const width, height = 256, 256
	buf := make([]byte, scanlineBytes(width, FormatARGB32)*height)
	img, err := NewBufferImage(width, height, FormatARGB32, buf)
	if err != nil {
		b.Fatal(err)
	}
	px := PixelFromRGBA(RGBA{R: 0xFFFF, A: 0xFFFF}, FormatARGB32, img.Endianness())

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SetPixelAt(img, i%width, (i/width)%height, px)
	}
	b.SetBytes(4)
}

// BenchmarkPixel_Hash benchmarks hashing for map keys.
func BenchmarkPixel_Hash(b *testing.B) {
	px := NewPixel([]byte{0x11, 0x22, 0x33, 0x44}, NativeEndianness, FormatARGB32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = px.Hash()
	}
}
