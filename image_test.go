package pixfmt

import "testing"

func TestSubByteIndex(t *testing.T) {
	tests := []struct {
		format Format
		x      int
		want   uint8
	}{
		{FormatA1, 0, 0},
		{FormatA1, 3, 3},
		{FormatA1, 7, 7},
		{FormatA1, 8, 0},
		{FormatA1, 11, 3},
		{FormatA4, 0, 0},
		{FormatA4, 1, 4},
		{FormatA4, 2, 0},
		{FormatA4, 5, 4},
		{FormatA8, 3, 0},
		{FormatARGB32, 3, 0},
	}

	for _, tt := range tests {
		if got := subByteIndex(tt.format, tt.x); got != tt.want {
			t.Errorf("subByteIndex(%v, %d) = %d, want %d", tt.format, tt.x, got, tt.want)
		}
	}
}

func TestPixelAt(t *testing.T) {
	// Two ARGB32 pixels side by side.
	buf := []byte{
		0x11, 0x22, 0x33, 0x44,
		0xAA, 0xBB, 0xCC, 0xDD,
	}
	img, err := BufferBuilder(2, 1, FormatARGB32, buf).
		WithEndianness(LittleEndian).
		Finish()
	if err != nil {
		t.Fatalf("Finish() = %v", err)
	}

	if got := PixelAt(img, 0, 0).RawUint32(); got != 0x44332211 {
		t.Errorf("pixel 0 = %#x, want 0x44332211", got)
	}
	if got := PixelAt(img, 1, 0).RawUint32(); got != 0xDDCCBBAA {
		t.Errorf("pixel 1 = %#x, want 0xDDCCBBAA", got)
	}
}

func TestSetPixelAt(t *testing.T) {
	buf := make([]byte, 8)
	img, err := NewBufferImage(2, 1, FormatARGB32, buf)
	if err != nil {
		t.Fatalf("NewBufferImage() = %v", err)
	}

	white := PixelFromRGBA(RGBA{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, FormatARGB32, img.Endianness())
	SetPixelAt(img, 1, 0, white)

	if got := PixelAt(img, 1, 0).RawUint32(); got != 0xFFFFFFFF {
		t.Errorf("stored pixel = %#x, want 0xFFFFFFFF", got)
	}
	// The neighbor stays untouched.
	if got := PixelAt(img, 0, 0).RawUint32(); got != 0 {
		t.Errorf("neighbor = %#x, want 0", got)
	}
}

func TestSetPixelAt_ConvertsFormat(t *testing.T) {
	buf := make([]byte, 4)
	img, err := NewBufferImage(4, 1, FormatA8, buf)
	if err != nil {
		t.Fatalf("NewBufferImage() = %v", err)
	}

	// Storing an ARGB32 pixel into an A8 image keeps only the alpha.
	src := PixelFromRGBA(RGBA{R: 0xFFFF, A: 0x8080}, FormatARGB32, NativeEndianness)
	SetPixelAt(img, 2, 0, src)

	if got := PixelAt(img, 2, 0).RawUint32(); got != 0x80 {
		t.Errorf("stored alpha = %#x, want 0x80", got)
	}
}

func TestSetPixelAt_SubByte(t *testing.T) {
	buf := make([]byte, 1)
	img, err := NewBufferImage(8, 1, FormatA1, buf)
	if err != nil {
		t.Fatalf("NewBufferImage() = %v", err)
	}

	set := CollectChannels(NativeEndianness, FormatA1, NewChannelValue(ChannelAlpha, 1))
	SetPixelAt(img, 3, 0, set)
	SetPixelAt(img, 5, 0, set)

	if buf[0] != 0b0010_1000 {
		t.Fatalf("buffer = %08b, want 00101000", buf[0])
	}
	if got := PixelAt(img, 3, 0).RawUint32(); got != 1 {
		t.Errorf("pixel 3 = %d, want 1", got)
	}
	if got := PixelAt(img, 4, 0).RawUint32(); got != 0 {
		t.Errorf("pixel 4 = %d, want 0", got)
	}

	// Clearing one bit leaves the other set.
	clear := CollectChannels(NativeEndianness, FormatA1, NewChannelValue(ChannelAlpha, 0))
	SetPixelAt(img, 3, 0, clear)
	if buf[0] != 0b0010_0000 {
		t.Errorf("buffer after clear = %08b, want 00100000", buf[0])
	}
}

func TestSetPixelAt_SubByteNibble(t *testing.T) {
	buf := make([]byte, 2)
	img, err := NewBufferImage(4, 1, FormatA4, buf)
	if err != nil {
		t.Fatalf("NewBufferImage() = %v", err)
	}

	SetPixelAt(img, 1, 0, CollectChannels(NativeEndianness, FormatA4, NewChannelValue(ChannelAlpha, 0xC)))
	SetPixelAt(img, 2, 0, CollectChannels(NativeEndianness, FormatA4, NewChannelValue(ChannelAlpha, 0x5)))

	if buf[0] != 0xC0 || buf[1] != 0x05 {
		t.Errorf("buffer = %02x%02x, want c005", buf[0], buf[1])
	}
	if got := PixelAt(img, 1, 0).RawUint32(); got != 0xC {
		t.Errorf("pixel 1 = %#x, want 0xC", got)
	}
}

func TestDivideRoundingUp(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 8, 0},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{16, 8, 2},
	}
	for _, tt := range tests {
		if got := divideRoundingUp(tt.a, tt.b); got != tt.want {
			t.Errorf("divideRoundingUp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
