package codec

import (
	"fmt"
	"time"
)

// Codec converts between a wire scalar W and an editor-typed value U.
// Encode runs editor -> wire; Decode runs wire -> editor.
type Codec[W, U any] interface {
	Encode(u U) (W, error)
	Decode(w W) (U, error)
}

// Color returns the hex <-> packed ARGB codec. Decode keeps the alpha byte
// when includeAlpha is set and otherwise uses the compact form.
func Color(includeAlpha bool) Codec[string, string] { return colorCodec{includeAlpha: includeAlpha} }

type colorCodec struct{ includeAlpha bool }

func (colorCodec) Encode(hex string) (string, error) { return HexToWireColor(hex) }

func (c colorCodec) Decode(w string) (string, error) {
	if c.includeAlpha {
		return WireColorToHex(w, true)
	}
	return CompactHex(w)
}

// Number returns the lenient number codec. It never fails.
func Number() Codec[string, float64] { return numberCodec{} }

type numberCodec struct{}

func (numberCodec) Encode(n float64) (string, error) { return NumberToWireString(n), nil }
func (numberCodec) Decode(s string) (float64, error) { return WireStringToNumber(s), nil }

// Flag returns the "0"/"1" codec. It never fails.
func Flag() Codec[string, bool] { return flagCodec{} }

type flagCodec struct{}

func (flagCodec) Encode(b bool) (string, error) { return BoolToWireFlag(b), nil }
func (flagCodec) Decode(s string) (bool, error) { return WireFlagToBool(s), nil }

// TimeLayout is the wall-clock layout players use for timer targets.
const TimeLayout = "2006-01-02 15:04:05"

// Time returns a codec between TimeLayout strings and time.Time in loc.
// A nil loc means UTC.
func Time(loc *time.Location) Codec[string, time.Time] {
	if loc == nil {
		loc = time.UTC
	}
	return timeCodec{loc: loc}
}

type timeCodec struct{ loc *time.Location }

func (c timeCodec) Encode(t time.Time) (string, error) {
	if t.IsZero() {
		return "", nil
	}
	return t.In(c.loc).Format(TimeLayout), nil
}

func (c timeCodec) Decode(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(TimeLayout, s, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("codec: invalid time %q: %w", s, err)
	}
	return t, nil
}
