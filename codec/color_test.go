package codec_test

import (
	"errors"
	"math"
	"testing"

	"github.com/reoring/govsn/codec"
)

func TestHexToWireColor_Forms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#000000", "4278190080"},
		{"#FFFFFF", "4294967295"},
		{"#fff", "4294967295"},
		{"#F00", "4294901760"},
		{"#00000000", "0"},
		{"#80ff0000", "2164195328"},
	}
	for _, c := range cases {
		got, err := codec.HexToWireColor(c.in)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%s: want %s, got %s", c.in, c.want, got)
		}
	}
}

func TestHexToWireColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "000000", "#12", "#12345", "#GGGGGG", "#1234567", " #FFFFFF"} {
		if _, err := codec.HexToWireColor(in); !errors.Is(err, codec.ErrInvalidColorFormat) {
			t.Fatalf("%q: expected ErrInvalidColorFormat, got %v", in, err)
		}
	}
}

func TestWireColorToHex_RoundTrip(t *testing.T) {
	for _, in := range []string{"#000", "#abc", "#123456", "#FEDCBA98", "#00ff00", "#7f000000"} {
		wire, err := codec.HexToWireColor(in)
		if err != nil {
			t.Fatalf("%s: encode: %v", in, err)
		}
		got, err := codec.WireColorToHex(wire, true)
		if err != nil {
			t.Fatalf("%s: decode: %v", in, err)
		}
		want, _ := codec.NormalizeHex(in)
		if got != want {
			t.Fatalf("%s: want %s, got %s", in, want, got)
		}
	}
}

func TestWireColorToHex_WithoutAlpha(t *testing.T) {
	got, err := codec.WireColorToHex("4278190335", false)
	if err != nil || got != "#0000FF" {
		t.Fatalf("got %q err=%v", got, err)
	}
}

func TestWireColorToHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "-0", "+255", "+4278190080", " 255", "4294967296", "1.5"} {
		if _, err := codec.WireColorToHex(in, true); !errors.Is(err, codec.ErrInvalidColorFormat) {
			t.Fatalf("%q: expected ErrInvalidColorFormat, got %v", in, err)
		}
	}
}

func TestWireColorToRGBA_HalfAlphaRed(t *testing.T) {
	wire, err := codec.HexToWireColor("#80FF0000")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	c, err := codec.WireColorToRGBA(wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("unexpected channels: %+v", c)
	}
	if math.Abs(c.A-0.5) > 0.01 {
		t.Fatalf("alpha: want ~0.5, got %f", c.A)
	}
}

func TestCompactHex(t *testing.T) {
	if got, _ := codec.CompactHex("4278190080"); got != "#000000" {
		t.Fatalf("opaque black: got %s", got)
	}
	if got, _ := codec.CompactHex("0"); got != "#00000000" {
		t.Fatalf("transparent: got %s", got)
	}
}
