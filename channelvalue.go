package pixfmt

import "math"

// ChannelValue is the extracted value of a single channel. It always
// carries a cheap normalized 0..255 integer projection; when it was
// produced from float data it additionally carries the exact float, which
// is the authority for comparisons and lossless float round-trips.
type ChannelValue struct {
	channel Channel
	// value is the normalized integer projection.
	value uint8
	// float is the exact value in [0, 1], valid only when hasFloat is set.
	float    float32
	hasFloat bool
}

// NewChannelValue creates a channel value from a normalized 0..255
// integer. No exact float is retained.
func NewChannelValue(channel Channel, value uint8) ChannelValue {
	return ChannelValue{channel: channel, value: value}
}

// NewChannelValueFloat creates a channel value from an exact float.
//
// value is expected to be between 0.0 and 1.0 inclusive; other values
// lead to logic errors. NaN drops the float anchor and projects to zero.
func NewChannelValueFloat(channel Channel, value float32) ChannelValue {
	if value != value { // NaN
		return ChannelValue{channel: channel}
	}
	scaled := math.Round(float64(value) * 255)
	if scaled < 0 {
		scaled = 0
	} else if scaled > 255 {
		scaled = 255
	}
	return ChannelValue{
		channel:  channel,
		value:    uint8(scaled),
		float:    value,
		hasFloat: true,
	}
}

// Channel returns the channel this value belongs to.
func (v ChannelValue) Channel() Channel {
	return v.channel
}

// Value returns the normalized 0..255 integer projection.
func (v ChannelValue) Value() uint8 {
	return v.value
}

// FloatValue returns the exact float if one was retained, or the integer
// projection scaled into [0, 1] otherwise.
func (v ChannelValue) FloatValue() float32 {
	if v.hasFloat {
		return v.float
	}
	return float32(v.value) / 255
}
