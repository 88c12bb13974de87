package pixfmt

// ChannelInfo describes where one channel lives within a packed pixel:
// which channel it is, how many bits it uses, and the bit offset of its
// low bit.
type ChannelInfo struct {
	// Channel is the channel being described.
	Channel Channel
	// Bits is the number of bits used by this channel.
	Bits uint8
	// Shift is the number of bits to shift to reach this channel.
	Shift uint8
}

// Channels returns an iterator over the present channels of this format,
// in the order dictated by the color type. Channels with a zero bit width
// are skipped.
//
// The iterator is double ended and knows its exact remaining length
// without being consumed. It holds no external state; a fresh call
// re-derives it.
func (f Format) Channels() ChannelIter {
	total := 0
	order := f.colorType.order()
	for _, ch := range order {
		total += f.ChannelBits(ch)
	}
	return ChannelIter{
		format:    f,
		order:     order,
		back:      len(order),
		shiftBack: total,
	}
}

// ChannelIter iterates over the present channels of a Format.
//
// Shifts are assigned cumulatively: the front cursor starts at zero and
// advances by each channel's width, the back cursor starts at the sum of
// all present widths and retreats the same way, so forward and backward
// traversal agree on every channel's shift and interleaved iteration
// meets in the middle.
type ChannelIter struct {
	format Format
	order  []Channel
	// front and back index the channel order.
	front int
	back  int
	// shift and shiftBack are the front and back bit cursors.
	shift     int
	shiftBack int
}

// Next returns the next channel from the front, or false when the
// iterator is exhausted.
func (it *ChannelIter) Next() (ChannelInfo, bool) {
	for {
		if it.shift == it.shiftBack || it.front >= it.back {
			return ChannelInfo{}, false
		}

		ch := it.order[it.front]
		it.front++

		bits := it.format.ChannelBits(ch)
		if bits == 0 {
			continue
		}

		info := ChannelInfo{
			Channel: ch,
			Bits:    uint8(bits),
			Shift:   uint8(it.shift),
		}
		it.shift += bits
		return info, true
	}
}

// NextBack returns the next channel from the back, or false when the
// iterator is exhausted.
func (it *ChannelIter) NextBack() (ChannelInfo, bool) {
	for {
		if it.shift == it.shiftBack || it.front >= it.back {
			return ChannelInfo{}, false
		}

		it.back--
		ch := it.order[it.back]

		bits := it.format.ChannelBits(ch)
		if bits == 0 {
			continue
		}

		it.shiftBack -= bits
		if it.shiftBack < 0 {
			it.shiftBack = 0
		}
		return ChannelInfo{
			Channel: ch,
			Bits:    uint8(bits),
			Shift:   uint8(it.shiftBack),
		}, true
	}
}

// Len returns the exact number of channels remaining, without consuming
// the iterator. A channel counts as remaining when its bit window still
// lies between the front and back cursors.
func (it *ChannelIter) Len() int {
	cum := 0
	n := 0
	for _, ch := range it.format.colorType.order() {
		bits := it.format.ChannelBits(ch)
		if bits == 0 {
			continue
		}
		cum += bits
		if cum > it.shift && cum <= it.shiftBack {
			n++
		}
	}
	return n
}

// Collect drains the iterator from the front into a fixed-capacity array,
// returning the entries and their count.
func (it *ChannelIter) Collect() ([4]ChannelInfo, int) {
	var out [4]ChannelInfo
	n := 0
	for {
		info, ok := it.Next()
		if !ok {
			return out, n
		}
		out[n] = info
		n++
	}
}
