package common

// RGB is the color of a bulb as 8-bit red, green and blue components.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// The pure primary colors receive special framing on the wire (the bulb
// firmware expects a terminal marker after them).
var (
	Red   = RGB{R: 255}
	Green = RGB{G: 255}
	Blue  = RGB{B: 255}
	White = RGB{R: 255, G: 255, B: 255}
)

// IsPrimary reports whether the color is exactly one of the three pure
// primaries.
func (c RGB) IsPrimary() bool {
	return c == Red || c == Green || c == Blue
}
