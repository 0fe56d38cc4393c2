package goihomma_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/gawindx/goihomma"

	"github.com/gawindx/goihomma/common"
	"github.com/gawindx/goihomma/mocks"
)

var _ = Describe("Group", func() {
	var (
		group *Group
		devA  *mocks.Device
		devB  *mocks.Device
	)

	BeforeEach(func() {
		var err error
		group, err = NewGroup()
		Expect(err).NotTo(HaveOccurred())
		devA = new(mocks.Device)
		devB = new(mocks.Device)
		devA.On(`IP`).Return(`127.0.0.1`)
		devB.On(`IP`).Return(`127.0.0.2`)
	})

	addBoth := func() {
		Expect(group.AddDevice(devA)).To(Succeed())
		Expect(group.AddDevice(devB)).To(Succeed())
	}

	It("should refuse a duplicate member", func() {
		Expect(group.AddDevice(devA)).To(Succeed())
		Expect(group.AddDevice(devA)).To(Equal(common.ErrDuplicate))
	})

	It("should error removing a non-member", func() {
		Expect(group.RemoveDevice(devA)).To(Equal(common.ErrNotFound))
	})

	It("should fail every command on an empty group", func() {
		Expect(group.TurnOn()).To(BeFalse())
		Expect(group.SetBrightness(100)).To(BeFalse())
	})

	It("should succeed when every member succeeds", func() {
		addBoth()
		devA.On(`TurnOn`).Return(true)
		devB.On(`TurnOn`).Return(true)
		Expect(group.TurnOn()).To(BeTrue())
		devA.AssertCalled(GinkgoT(), `TurnOn`)
		devB.AssertCalled(GinkgoT(), `TurnOn`)
	})

	It("should fail when any member fails", func() {
		addBoth()
		devA.On(`TurnOff`).Return(true)
		devB.On(`TurnOff`).Return(false)
		Expect(group.TurnOff()).To(BeFalse())
	})

	It("should fan commands out with their arguments", func() {
		addBoth()
		color := common.RGB{R: 1, G: 2, B: 3}
		devA.On(`SetColor`, color).Return(true)
		devB.On(`SetColor`, color).Return(true)
		Expect(group.SetColor(color)).To(BeTrue())

		devA.On(`SetEffect`, byte(0xE), `party`).Return(true)
		devB.On(`SetEffect`, byte(0xE), `party`).Return(true)
		Expect(group.SetEffect(0xE, `party`)).To(BeTrue())
	})

	It("should aggregate member states", func() {
		addBoth()
		devA.On(`State`).Return(common.State{
			Available:  true,
			On:         true,
			Brightness: 100,
			Kelvin:     3000,
			RGB:        common.Red,
			Effect:     `party`,
		})
		devB.On(`State`).Return(common.State{
			Available:  true,
			On:         false,
			Brightness: 200,
			Kelvin:     5000,
		})

		st := group.State()
		Expect(st.Available).To(BeTrue())
		Expect(st.On).To(BeTrue())
		Expect(st.Brightness).To(Equal(150))
		Expect(st.Kelvin).To(Equal(4000))
	})

	It("should be unavailable when any member is unreachable", func() {
		addBoth()
		devA.On(`State`).Return(common.State{Available: true})
		devB.On(`State`).Return(common.State{Available: false})

		Expect(group.State().Available).To(BeFalse())
	})
})
