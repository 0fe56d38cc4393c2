package common_test

import (
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/gawindx/goihomma/common"
	"github.com/gawindx/goihomma/mocks"
)

var _ = Describe("Subscription", func() {
	var (
		target *mocks.SubscriptionTarget
		sub    *common.Subscription
	)

	BeforeEach(func() {
		target = new(mocks.SubscriptionTarget)
		target.On(`CloseSubscription`, mock.Anything).Return(nil)
		sub = common.NewSubscription(target)
	})

	It("should assign each subscription a unique ID", func() {
		other := common.NewSubscription(target)
		Expect(sub.ID()).NotTo(Equal(other.ID()))
	})

	It("should deliver written events in order", func() {
		Expect(sub.Write(1)).To(Succeed())
		Expect(sub.Write(2)).To(Succeed())
		Expect(<-sub.Events()).To(Equal(1))
		Expect(<-sub.Events()).To(Equal(2))
	})

	It("should notify the target on close", func() {
		Expect(sub.Close()).To(Succeed())
		target.AssertCalled(GinkgoT(), `CloseSubscription`, sub)
	})

	It("should error on double close", func() {
		Expect(sub.Close()).To(Succeed())
		Expect(sub.Close()).To(Equal(common.ErrClosed))
	})

	It("should reject writes after close instead of panicking", func() {
		Expect(sub.Close()).To(Succeed())
		for i := 0; i < 100; i++ {
			Expect(sub.Write(i)).To(Equal(common.ErrClosed))
		}
	})

	It("should survive writes racing a close", func() {
		var wg sync.WaitGroup
		results := make([]error, 8)
		wg.Add(len(results))
		for i := range results {
			go func(i int) {
				results[i] = sub.Write(i)
				wg.Done()
			}(i)
		}
		Expect(sub.Close()).To(Succeed())
		wg.Wait()

		for _, err := range results {
			if err != nil {
				Expect(err).To(Equal(common.ErrClosed))
			}
		}
	})
})
