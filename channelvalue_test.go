package pixfmt

import (
	"math"
	"testing"
)

func TestChannelValue_FloatIntegerAgreement(t *testing.T) {
	tests := []struct {
		name  string
		float float32
		want  uint8
	}{
		{"one is 255", 1.0, 255},
		{"zero is 0", 0.0, 0},
		{"half rounds to 128", 0.5, 128},
		{"quarter rounds to 64", 0.25, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewChannelValueFloat(ChannelRed, tt.float)
			if got := v.Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
			if got := v.FloatValue(); got != tt.float {
				t.Errorf("FloatValue() = %v, want exact %v", got, tt.float)
			}
		})
	}
}

func TestChannelValue_Integer(t *testing.T) {
	v := NewChannelValue(ChannelGreen, 51)
	if v.Channel() != ChannelGreen {
		t.Errorf("Channel() = %v, want Green", v.Channel())
	}
	if v.Value() != 51 {
		t.Errorf("Value() = %d, want 51", v.Value())
	}
	// No exact float retained: FloatValue falls back to value/255.
	if got, want := v.FloatValue(), float32(51)/255; got != want {
		t.Errorf("FloatValue() = %v, want %v", got, want)
	}
}

func TestChannelValue_NaNDropsFloatAnchor(t *testing.T) {
	v := NewChannelValueFloat(ChannelBlue, float32(math.NaN()))
	if v.Value() != 0 {
		t.Errorf("Value() = %d, want 0", v.Value())
	}
	if got := v.FloatValue(); got != 0 {
		t.Errorf("FloatValue() = %v, want 0 fallback", got)
	}
}
