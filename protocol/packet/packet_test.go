package packet_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gawindx/goihomma/protocol/packet"
)

func byteSum(pkt []byte) int {
	sum := 0
	for _, b := range pkt {
		sum += int(b)
	}
	return sum
}

var _ = Describe("Forge", func() {
	It("should frame every packet with the protocol header", func() {
		packets := [][]byte{
			packet.Forge(packet.InstructionPower, packet.WriteSwitchWrite, []byte{packet.PowerOn}, 0),
			packet.Forge(packet.InstructionBrightness, packet.WriteSwitchWrite, []byte{100}, 0),
			packet.Forge(packet.InstructionColor, packet.WriteSwitchWrite, []byte{255, 0, 0}, packet.Terminal),
			packet.Forge(packet.InstructionStatus, packet.WriteSwitchRead, []byte{packet.StatusAll}, 0),
		}
		for _, pkt := range packets {
			Expect(pkt[0]).To(Equal(byte(0xFE)))
			Expect(pkt[1]).To(Equal(byte(0xEF)))
		}
	})

	It("should pad terminal-less packets onto an allowed wire size", func() {
		payloads := [][]byte{
			{packet.PowerOn},
			{packet.PowerOff},
			{0},
			{200},
			{10, 20, 30},
			{packet.StatusAll},
		}
		for _, payload := range payloads {
			pkt := packet.Forge(packet.InstructionPower, packet.WriteSwitchWrite, payload, 0)
			Expect(packet.AllowedSizes).To(ContainElement(byteSum(pkt)))
		}
	})

	It("should account for the terminal marker in the padding", func() {
		pkt := packet.Forge(packet.InstructionColor, packet.WriteSwitchWrite, []byte{100}, packet.Terminal)
		Expect(pkt[len(pkt)-1]).To(Equal(packet.Terminal))
		// The padding search targets the byte sum before the padding byte
		// is appended, and compensates by one for the terminal marker.
		Expect(packet.AllowedSizes).To(ContainElement(byteSum(pkt) - 1))
	})

	It("should declare every byte after the length field", func() {
		pkt := packet.Forge(packet.InstructionBrightness, packet.WriteSwitchWrite, []byte{42}, 0)
		Expect(len(pkt)).To(Equal(int(pkt[2]) + 3))

		pkt = packet.Forge(packet.InstructionColor, packet.WriteSwitchWrite, []byte{0, 255, 0}, packet.Terminal)
		Expect(len(pkt)).To(Equal(int(pkt[2]) + 3))
	})

	It("should forge on and off packets differing only in payload and padding", func() {
		on := packet.Forge(packet.InstructionPower, packet.WriteSwitchWrite, []byte{packet.PowerOn}, 0)
		off := packet.Forge(packet.InstructionPower, packet.WriteSwitchWrite, []byte{packet.PowerOff}, 0)
		Expect(len(on)).To(Equal(len(off)))
		for i := range on {
			if i == 5 || i == 6 {
				continue
			}
			Expect(on[i]).To(Equal(off[i]))
		}
		Expect(on[5]).To(Equal(packet.PowerOn))
		Expect(off[5]).To(Equal(packet.PowerOff))
		Expect(int(on[5]) + int(on[6])).To(Equal(int(off[5]) + int(off[6])))
	})

	It("should emit the degraded fallback when no allowed size fits", func() {
		payload := make([]byte, 30)
		for i := range payload {
			payload[i] = 0xFF
		}
		pkt := packet.Forge(packet.InstructionColor, packet.WriteSwitchWrite, payload, 0)
		// Length byte decremented by one, trailing zero terminal, no
		// padding search result.
		Expect(int(pkt[2])).To(Equal(len(payload) + 2))
		Expect(pkt[len(pkt)-1]).To(Equal(byte(0)))
		Expect(len(pkt)).To(Equal(5 + len(payload) + 1))
	})

	It("should fall back when the padding cannot fit in one byte", func() {
		// An empty payload sums low enough that every allowed size is
		// more than 255 bytes away.
		pkt := packet.Forge(0, 0, nil, 0)
		Expect(int(pkt[2])).To(Equal(2))
		Expect(pkt[len(pkt)-1]).To(Equal(byte(0)))
	})
})

var _ = Describe("ScaleBrightness", func() {
	It("should map the bounds exactly", func() {
		Expect(packet.ScaleBrightness(0)).To(Equal(0))
		Expect(packet.ScaleBrightness(255)).To(Equal(200))
	})

	It("should stay within the device range and never decrease", func() {
		previous := 0
		for v := 0; v <= 255; v++ {
			converted := packet.ScaleBrightness(v)
			Expect(converted).To(BeNumerically(">=", 0))
			Expect(converted).To(BeNumerically("<=", 200))
			Expect(converted).To(BeNumerically(">=", previous))
			previous = converted
		}
	})

	It("should clamp out-of-range input", func() {
		Expect(packet.ScaleBrightness(-10)).To(Equal(0))
		Expect(packet.ScaleBrightness(300)).To(Equal(200))
	})
})

var _ = Describe("ScaleKelvin", func() {
	It("should map the bounds exactly, inverted", func() {
		Expect(packet.ScaleKelvin(2700)).To(Equal(200))
		Expect(packet.ScaleKelvin(6500)).To(Equal(0))
	})

	It("should never increase with warmer input", func() {
		previous := 200
		for k := 2700; k <= 6500; k += 50 {
			converted := packet.ScaleKelvin(k)
			Expect(converted).To(BeNumerically("<=", previous))
			previous = converted
		}
	})

	It("should clamp out-of-range input", func() {
		Expect(packet.ScaleKelvin(1000)).To(Equal(200))
		Expect(packet.ScaleKelvin(9000)).To(Equal(0))
	})
})

var _ = Describe("Effects", func() {
	It("should know all nineteen vendor effects", func() {
		Expect(packet.Effects).To(HaveLen(19))
	})

	It("should not assign the vendor's unused code", func() {
		for _, code := range packet.Effects {
			Expect(code).NotTo(Equal(byte(0xA)))
		}
	})

	It("should resolve names to codes", func() {
		code, ok := packet.EffectCode(`candlelight`)
		Expect(ok).To(BeTrue())
		Expect(code).To(Equal(byte(0x1)))

		_, ok = packet.EffectCode(`disco`)
		Expect(ok).To(BeFalse())
	})

	It("should list names in lexical order", func() {
		names := packet.EffectNames()
		Expect(names).To(HaveLen(19))
		for i := 1; i < len(names); i++ {
			Expect(names[i-1] < names[i]).To(BeTrue())
		}
	})
})
