package packet

// Color temperature bounds supported by the bulb, in Kelvin.
const (
	MinKelvin = 2700
	MaxKelvin = 6500
)

// ScaleBrightness maps a logical brightness in [0, 255] onto the [0, 200]
// range the firmware expects.  Out-of-range values clamp to the nearest
// bound before conversion.
func ScaleBrightness(value int) int {
	if value < 0 {
		value = 0
	}
	if value > 255 {
		value = 255
	}
	return value * 200 / 255
}

// ScaleKelvin maps a color temperature in [MinKelvin, MaxKelvin] onto the
// [0, 200] range the firmware expects.  The mapping is inverted: higher
// Kelvin yields a lower device value.  Out-of-range values clamp to the
// nearest bound before conversion.
func ScaleKelvin(kelvin int) int {
	if kelvin < MinKelvin {
		kelvin = MinKelvin
	}
	if kelvin > MaxKelvin {
		kelvin = MaxKelvin
	}
	return 200 - (kelvin-MinKelvin)*200/(MaxKelvin-MinKelvin)
}
