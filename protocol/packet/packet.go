// Package packet forges iHomma SML instruction packets.
//
// A packet is framed as:
//
//	[0xFE, 0xEF, length, instruction, write_switch, payload..., padding, terminal?]
//
// where length counts the payload plus the instruction, write switch and
// padding bytes (plus the terminal marker when present), and padding is
// chosen so that the byte sum of the whole packet lands on one of the
// total wire sizes the bulb firmware accepts.
package packet

// Instruction codes understood by the bulb.
const (
	// InstructionPower selects the power command family
	InstructionPower byte = 0xA3
	// InstructionBrightness selects the brightness command family
	InstructionBrightness byte = 0xA7
	// InstructionColor selects the color / color temperature family
	InstructionColor byte = 0xA1
	// InstructionEffect selects the effect command family
	InstructionEffect byte = 0xA5
	// InstructionStatus queries the bulb status block
	InstructionStatus byte = 0x2E
)

// Write switch values, distinguishing writes from reads.
const (
	WriteSwitchRead  byte = 0
	WriteSwitchWrite byte = 1
)

// Payload values.
const (
	// PowerOn is the power payload requesting on
	PowerOn byte = 17
	// PowerOff is the power payload requesting off
	PowerOff byte = 18
	// StatusAll is the status query payload requesting the full block
	StatusAll byte = 0xFF
)

// Terminal is the trailing marker the firmware expects after full-spectrum
// warmth and pure-primary RGB commands.
const Terminal byte = 94

// AllowedSizes lists, in ascending order, the total wire sizes the bulb
// accepts.  Forge pads every packet onto the first entry its byte sum can
// reach.
var AllowedSizes = []int{752, 1008, 1009, 1010, 1266, 1522, 5677}

// Forge builds the wire packet for an instruction.  payload carries the
// command-specific data, terminal is 0 for no trailing marker or the fixed
// marker value.  Forge cannot fail: when no allowed size is reachable with
// a single padding byte it emits the degraded variant below.
func Forge(instruction, writeSwitch byte, payload []byte, terminal byte) []byte {
	length := len(payload) + 3
	if terminal != 0 {
		length++
	}

	pkt := make([]byte, 0, len(payload)+7)
	pkt = append(pkt, 0xFE, 0xEF, byte(length), instruction, writeSwitch)
	pkt = append(pkt, payload...)

	sum := int(terminal)
	for _, b := range pkt {
		sum += int(b)
	}

	for _, size := range AllowedSizes {
		if size < sum {
			continue
		}
		padding := size - sum
		if terminal != 0 {
			padding++
		}
		if padding > 255 {
			continue
		}
		pkt = append(pkt, byte(padding))
		if terminal != 0 {
			pkt = append(pkt, terminal)
		}
		return pkt
	}

	// No allowed size is reachable with a one-byte padding.  Shrink the
	// declared length and close with the terminal byte, even when it is
	// zero.  The result carries an inconsistent checksum, but the firmware
	// has always been sent exactly this, so it is preserved bit for bit.
	pkt[2]--
	return append(pkt, terminal)
}
