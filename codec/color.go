package codec

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidColorFormat reports a hex color or packed wire color that cannot
// be parsed.
var ErrInvalidColorFormat = errors.New("codec: invalid color format")

var hexColorRE = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// ParseHexColor parses #RGB, #RRGGBB or #AARRGGBB into a packed ARGB value.
// Missing alpha is fully opaque.
func ParseHexColor(hex string) (uint32, error) {
	if !hexColorRE.MatchString(hex) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	h := hex[1:]
	switch len(h) {
	case 3:
		h = "FF" + string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
		h = "FF" + h
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	return uint32(n), nil
}

// HexToWireColor encodes a hex color as the decimal string of its packed
// ARGB value: (alpha<<24)|(r<<16)|(g<<8)|b.
func HexToWireColor(hex string) (string, error) {
	v, err := ParseHexColor(hex)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(v), 10), nil
}

// ParseWireColor parses a decimal wire color. It must be an integer in
// [0, 2^32-1].
func ParseWireColor(value string) (uint32, error) {
	if value == "" || value[0] < '0' || value[0] > '9' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
	}
	return uint32(n), nil
}

// WireColorToHex decodes a wire color into #AARRGGBB (includeAlpha) or
// #RRGGBB, uppercase.
func WireColorToHex(value string, includeAlpha bool) (string, error) {
	v, err := ParseWireColor(value)
	if err != nil {
		return "", err
	}
	return FormatHex(v, includeAlpha), nil
}

// FormatHex renders a packed ARGB value as uppercase hex.
func FormatHex(argb uint32, includeAlpha bool) string {
	if includeAlpha {
		return fmt.Sprintf("#%08X", argb)
	}
	return fmt.Sprintf("#%06X", argb&0xFFFFFF)
}

// NormalizeHex returns the uppercase 8-digit form of a hex color.
func NormalizeHex(hex string) (string, error) {
	v, err := ParseHexColor(hex)
	if err != nil {
		return "", err
	}
	return FormatHex(v, true), nil
}

// RGBA is an unpacked color with alpha scaled to [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Unpack splits a packed ARGB value.
func Unpack(argb uint32) RGBA {
	return RGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: float64(argb>>24) / 255,
	}
}

// WireColorToRGBA decodes a wire color into its channels.
func WireColorToRGBA(value string) (RGBA, error) {
	v, err := ParseWireColor(value)
	if err != nil {
		return RGBA{}, err
	}
	return Unpack(v), nil
}

// IsOpaque reports whether a packed value has alpha 0xFF.
func IsOpaque(argb uint32) bool { return argb>>24 == 0xFF }

// CompactHex decodes a wire color to #RRGGBB when it is opaque and to
// #AARRGGBB otherwise, so opaque colors round-trip in the short form the
// editor uses.
func CompactHex(value string) (string, error) {
	v, err := ParseWireColor(value)
	if err != nil {
		return "", err
	}
	return FormatHex(v, !IsOpaque(v)), nil
}
