package state_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gawindx/goihomma/common"
	"github.com/gawindx/goihomma/state"
)

var _ = Describe("Store", func() {
	var store *state.Store

	BeforeEach(func() {
		store = state.NewStore()
	})

	It("should return nothing for an unknown endpoint", func() {
		_, ok := store.Get(`192.168.1.40`)
		Expect(ok).To(BeFalse())
	})

	It("should record the last published state per endpoint", func() {
		store.Update(`192.168.1.40`, common.State{On: true, Brightness: 10})
		store.Update(`192.168.1.40`, common.State{On: true, Brightness: 42})
		store.Update(`192.168.1.41`, common.State{On: false})

		st, ok := store.Get(`192.168.1.40`)
		Expect(ok).To(BeTrue())
		Expect(st.Brightness).To(Equal(42))

		st, ok = store.Get(`192.168.1.41`)
		Expect(ok).To(BeTrue())
		Expect(st.On).To(BeFalse())
	})

	It("should notify only subscribers of the updated endpoint", func() {
		subA, err := store.Subscribe(`192.168.1.40`)
		Expect(err).NotTo(HaveOccurred())
		subB, err := store.Subscribe(`192.168.1.41`)
		Expect(err).NotTo(HaveOccurred())

		store.Update(`192.168.1.40`, common.State{On: true})

		event := <-subA.Events()
		update, ok := event.(common.EventUpdateState)
		Expect(ok).To(BeTrue())
		Expect(update.IP).To(Equal(`192.168.1.40`))
		Expect(update.State.On).To(BeTrue())

		Expect(subB.Events()).NotTo(Receive())
	})

	It("should stop notifying a closed subscription", func() {
		sub, err := store.Subscribe(`192.168.1.40`)
		Expect(err).NotTo(HaveOccurred())
		Expect(sub.Close()).To(Succeed())

		store.Update(`192.168.1.40`, common.State{On: true})
		_, ok := store.Get(`192.168.1.40`)
		Expect(ok).To(BeTrue())
	})

	It("should refuse an endpoint-less subscription", func() {
		_, err := store.NewSubscription()
		Expect(err).To(HaveOccurred())
	})
})
