package packet

import "sort"

// Effects maps the effect names the bulb firmware knows to their effect
// codes.  Code 0xA is unassigned by the vendor.
var Effects = map[string]byte{
	`strong_white`:   0x0,
	`candlelight`:    0x1,
	`morning_light`:  0x2,
	`nature_light`:   0x3,
	`snow_light`:     0x4,
	`squirrel_light`: 0x5,
	`coffee_light`:   0x6,
	`desk_light`:     0x7,
	`hipster`:        0x8,
	`yellow_light`:   0x9,
	`slow_colors`:    0xB,
	`slow_morning`:   0xC,
	`circle`:         0xD,
	`party`:          0xE,
	`romantic`:       0xF,
	`smooth_yellow`:  0x10,
	`blue_wave`:      0x11,
	`strong_green`:   0x12,
	`white_yellow`:   0x13,
}

// EffectCode looks up the code for an effect name.
func EffectCode(name string) (byte, bool) {
	code, ok := Effects[name]
	return code, ok
}

// EffectNames returns the known effect names in lexical order.
func EffectNames() []string {
	names := make([]string, 0, len(Effects))
	for name := range Effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
