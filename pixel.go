package pixfmt

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
)

// lowBitMasks[n] masks the n lowest bits of a uint32, for n in 0..32.
// Built once at package initialization and never mutated.
var lowBitMasks = func() [33]uint32 {
	var masks [33]uint32
	current := uint32(0)
	for i := range masks {
		masks[i] = current
		current = current<<1 | 1
	}
	return masks
}()

// Pixel is a single decoded pixel: its raw value together with the format
// and endianness needed to interpret it.
//
// A pixel is either packed (an integer holding the channel bits laid out
// per the format's shifts, plus a bit offset for sub-byte formats) or
// float (one 32-bit float per present channel). The variant is selected
// once at construction from the format and never changes.
//
// Pixel is a copy value type. Use Equal, Compare and Hash rather than ==;
// two pixels of different formats can represent the same color.
type Pixel struct {
	format Format
	endian Endianness
	// float selects the variant. It is true iff format.InvolvesFloat().
	float bool

	// data holds the packed channel bits for non-float pixels, as the
	// logical value. Endianness applies only when crossing the byte
	// boundary in decode and insert.
	data uint32
	// index is the bit offset of a sub-byte pixel within its byte.
	index uint8

	// floats holds one slot per present channel for float pixels, in
	// color type order.
	floats [4]float32
}

// NewPixel decodes a pixel from raw bytes.
func NewPixel(raw []byte, endian Endianness, format Format) Pixel {
	return NewPixelAt(raw, 0, endian, format)
}

// NewPixelAt decodes a pixel from raw bytes. For sub-byte formats, index
// is the bit offset of the pixel within raw[0]; other formats normally
// pass zero.
func NewPixelAt(raw []byte, index uint8, endian Endianness, format Format) Pixel {
	cnt := format.Bytes()
	if cnt > len(raw) {
		cnt = len(raw)
	}

	if format.InvolvesFloat() {
		var buf [16]byte
		copy(buf[:], raw[:cnt])
		return pixelFromFloatBytes(buf, endian, format)
	}

	var buf [4]byte
	copy(buf[:], raw[:cnt])
	return pixelFromBytes(buf, index, endian, format)
}

// pixelFromBytes assembles a non-float pixel from up to four raw bytes.
// Decoding a format outside 1..=4 bytes is a caller error and panics.
func pixelFromBytes(raw [4]byte, index uint8, endian Endianness, format Format) Pixel {
	var data uint32
	switch cnt := format.Bytes(); cnt {
	case 1:
		data = uint32(raw[0])
	case 2:
		data = uint32(endian.Uint16(raw[:2]))
	case 3:
		if endian == BigEndian {
			data = uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2])
		} else {
			data = uint32(raw[2])<<16 | uint32(raw[1])<<8 | uint32(raw[0])
		}
	case 4:
		data = endian.Uint32(raw[:])
	default:
		panic(fmt.Sprintf("pixfmt: pixel has %d bytes, expected 1..=4", cnt))
	}

	return Pixel{
		format: format,
		endian: endian,
		data:   data,
		index:  index,
	}
}

// pixelFromFloatBytes reinterprets 16 raw bytes as four 32-bit floats,
// each assembled per the given endianness.
func pixelFromFloatBytes(raw [16]byte, endian Endianness, format Format) Pixel {
	var floats [4]float32
	for i := range floats {
		floats[i] = math.Float32frombits(endian.Uint32(raw[i*4 : i*4+4]))
	}
	return Pixel{
		format: format,
		endian: endian,
		float:  true,
		floats: floats,
	}
}

// CollectChannels builds a pixel of the given format and endianness from
// channel values. Values whose channel is absent from the format are
// dropped; channels with no matching value stay zero.
func CollectChannels(endian Endianness, format Format, values ...ChannelValue) Pixel {
	it := format.Channels()
	infos, n := it.Collect()

	if format.InvolvesFloat() {
		var floats [4]float32
		for _, cv := range values {
			for i := 0; i < n; i++ {
				if infos[i].Channel != cv.Channel() {
					continue
				}
				floats[i] = cv.FloatValue()
				break
			}
		}
		return Pixel{
			format: format,
			endian: endian,
			float:  true,
			floats: floats,
		}
	}

	var data uint32
	for _, cv := range values {
		for i := 0; i < n; i++ {
			if infos[i].Channel != cv.Channel() {
				continue
			}
			data |= (uint32(cv.Value()) & lowBitMasks[infos[i].Bits]) << infos[i].Shift
			break
		}
	}
	return Pixel{
		format: format,
		endian: endian,
		data:   data,
	}
}

// Format returns the format of this pixel.
func (p Pixel) Format() Format {
	return p.format
}

// Endianness returns the endianness of this pixel.
func (p Pixel) Endianness() Endianness {
	return p.endian
}

// ChannelValues returns the value of every present channel, in color type
// order. Float pixels retain their exact float values.
func (p Pixel) ChannelValues() []ChannelValue {
	values := make([]ChannelValue, 0, 4)

	it := p.format.Channels()
	if p.float {
		// Float slots are stored one per present channel, in order.
		slot := 0
		for {
			info, ok := it.Next()
			if !ok {
				return values
			}
			values = append(values, NewChannelValueFloat(info.Channel, p.floats[slot]))
			slot++
		}
	}

	data := p.data >> p.index
	for {
		info, ok := it.Next()
		if !ok {
			return values
		}
		v := uint8(data >> info.Shift & lowBitMasks[info.Bits])
		values = append(values, NewChannelValue(info.Channel, v))
	}
}

// componentsFloat returns the normalized float value of every present
// channel, in color type order. This is the canonical representation for
// equality, ordering and hashing.
func (p Pixel) componentsFloat() ([4]float32, int) {
	var out [4]float32

	if p.float {
		n := p.format.BitsPerPixel() / 32
		copy(out[:], p.floats[:n])
		return out, n
	}

	data := p.data >> p.index
	it := p.format.Channels()
	n := 0
	for {
		info, ok := it.Next()
		if !ok {
			return out, n
		}
		v := uint8(data >> info.Shift & lowBitMasks[info.Bits])
		out[n] = float32(v) / 255
		n++
	}
}

// RawUint32 returns the raw integer that could represent this pixel.
//
// For packed pixels this is basic bit arithmetic; for float pixels the
// value is computed from scratch, one byte per channel.
func (p Pixel) RawUint32() uint32 {
	if !p.float {
		// Masking matters for sub-byte pixels, where data still holds the
		// neighboring pixels packed into the same byte.
		return p.data >> p.index & lowBitMasks[p.format.BitsPerPixel()]
	}

	var data uint32
	comps, n := p.componentsFloat()
	for i := 0; i < n; i++ {
		c := comps[i] * 255
		if c < 0 || c != c {
			c = 0
		} else if c > 255 {
			c = 255
		}
		data = data<<8 | uint32(c)
	}
	return data
}

// Insert writes this pixel into bytes representing exactly one pixel of
// the same format.
//
// For sub-byte formats this is a read-modify-write on dst[0] that
// preserves the bits belonging to neighboring pixels packed into the same
// byte. For byte-aligned formats it is a straight byte copy.
func (p Pixel) Insert(dst []byte) {
	if !p.float && p.format.SubByte() {
		mask := uint8(lowBitMasks[p.format.BitsPerPixel()]) << p.index
		dst[0] = dst[0]&^mask | uint8(p.data)&mask
		return
	}

	order := p.endian.ByteOrder()
	var buf [16]byte
	if p.float {
		for i, f := range p.floats {
			order.PutUint32(buf[i*4:], math.Float32bits(f))
		}
	} else {
		switch p.format.Bytes() {
		case 1:
			buf[0] = uint8(p.data)
		case 2:
			order.PutUint16(buf[:2], uint16(p.data))
		case 3:
			if p.endian == BigEndian {
				buf[0], buf[1], buf[2] = uint8(p.data>>16), uint8(p.data>>8), uint8(p.data)
			} else {
				buf[0], buf[1], buf[2] = uint8(p.data), uint8(p.data>>8), uint8(p.data>>16)
			}
		default:
			order.PutUint32(buf[:4], p.data)
		}
	}
	copy(dst, buf[:p.format.Bytes()])
}

// FillRow writes this pixel repeatedly across a byte range and returns
// the number of bytes written. Formats of 1, 4, 8, 16 and 32 bits per
// pixel take fast replication paths; anything else falls back to repeated
// single-pixel inserts.
func (p Pixel) FillRow(dst []byte) int {
	switch p.format.BitsPerPixel() {
	case 1:
		fill := uint8(0x00)
		if p.RawUint32() != 0 {
			fill = 0xFF
		}
		for i := range dst {
			dst[i] = fill
		}
		return len(dst)

	case 4:
		nibble := uint8(p.RawUint32()) & 0x0F
		fill := nibble<<4 | nibble
		for i := range dst {
			dst[i] = fill
		}
		return len(dst)

	case 8:
		fill := uint8(p.RawUint32())
		for i := range dst {
			dst[i] = fill
		}
		return len(dst)

	case 16:
		var word [2]byte
		p.endian.ByteOrder().PutUint16(word[:], uint16(p.RawUint32()))
		n := 0
		for ; n+2 <= len(dst); n += 2 {
			copy(dst[n:n+2], word[:])
		}
		return n

	case 32:
		var word [4]byte
		p.endian.ByteOrder().PutUint32(word[:], p.RawUint32())
		n := 0
		for ; n+4 <= len(dst); n += 4 {
			copy(dst[n:n+4], word[:])
		}
		return n

	default:
		cnt := p.format.Bytes()
		n := 0
		for ; n+cnt <= len(dst); n += cnt {
			p.Insert(dst[n : n+cnt])
		}
		return n
	}
}

// Equal reports whether two pixels represent the same color.
//
// Matching raw bits on two packed pixels of the same format short-circuit
// to equal; anything else is decided by comparing the normalized float
// value of every channel, so a packed pixel and a float pixel holding the
// same color compare equal. The fast path requires matching formats:
// identical bits mean identical channels only under the same layout.
func (p Pixel) Equal(q Pixel) bool {
	if !p.float && !q.float && p.format == q.format && p.data == q.data && p.index == q.index {
		return true
	}
	return p.Compare(q) == 0
}

// Compare orders two pixels lexicographically by their normalized float
// channel values, using a NaN-safe total order (NaN sorts greatest). It
// returns -1, 0 or +1.
func (p Pixel) Compare(q Pixel) int {
	a, an := p.componentsFloat()
	b, bn := q.componentsFloat()

	n := an
	if bn < n {
		n = bn
	}
	for i := 0; i < n; i++ {
		if c := compareFloat32(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

// compareFloat32 is a total order over float32: the usual order with all
// NaNs equal to each other and greater than every number.
func compareFloat32(a, b float32) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var pixelHashSeed = maphash.MakeSeed()

// Hash returns a hash consistent with Equal: pixels that compare equal
// hash equal, even across the packed/float divide.
//
// The hash always covers the bit patterns of the normalized float channel
// values, never the raw packed integer, so a packed pixel hashes
// identically to a float pixel holding the same color. Bit patterns are
// canonicalized first: the total order treats all NaNs alike and negative
// zero equal to zero, so their payloads must not reach the hash.
func (p Pixel) Hash() uint64 {
	comps, n := p.componentsFloat()
	var buf [16]byte
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], canonicalFloat32Bits(comps[i]))
	}
	return maphash.Bytes(pixelHashSeed, buf[:n*4])
}

// canonicalFloat32Bits returns one bit pattern per equivalence class of
// the total order: every NaN maps to the quiet NaN, negative zero to zero.
func canonicalFloat32Bits(f float32) uint32 {
	if f != f {
		return 0x7FC00000
	}
	if f == 0 {
		return 0
	}
	return math.Float32bits(f)
}

// String returns the pixel's raw value as hex.
func (p Pixel) String() string {
	return fmt.Sprintf("Pixel(%08X)", p.RawUint32())
}
