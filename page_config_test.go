package paging_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/relay-paging"
)

var _ = Describe("PageConfig", func() {
	Describe("NewPageConfig", func() {
		It("should use the defaults", func() {
			cfg := paging.NewPageConfig()
			Expect(cfg.DefaultSize).To(Equal(20))
			Expect(cfg.MaxSize).To(Equal(100))
			Expect(cfg.IncludeTotalCount).To(BeFalse())
		})

		It("should ignore non-positive sizes", func() {
			cfg := paging.NewPageConfig().WithDefaultSize(0).WithMaxSize(-5)
			Expect(cfg.DefaultSize).To(Equal(20))
			Expect(cfg.MaxSize).To(Equal(100))
		})
	})

	Describe("EffectiveLimit", func() {
		var cfg *paging.PageConfig

		BeforeEach(func() {
			cfg = paging.NewPageConfig().WithDefaultSize(10).WithMaxSize(50)
		})

		It("should use the default size without first or last", func() {
			Expect(cfg.EffectiveLimit(nil)).To(Equal(10))
			Expect(cfg.EffectiveLimit(&paging.PageArgs{})).To(Equal(10))
		})

		It("should use first", func() {
			Expect(cfg.EffectiveLimit(&paging.PageArgs{First: ptr(7)})).To(Equal(7))
		})

		It("should use last", func() {
			Expect(cfg.EffectiveLimit(&paging.PageArgs{Last: ptr(3)})).To(Equal(3))
		})

		It("should cap at the max size", func() {
			Expect(cfg.EffectiveLimit(&paging.PageArgs{First: ptr(500)})).To(Equal(50))
			Expect(cfg.EffectiveLimit(&paging.PageArgs{Last: ptr(51)})).To(Equal(50))
		})

		It("should cap the default size too", func() {
			cfg := &paging.PageConfig{DefaultSize: 80, MaxSize: 30}
			Expect(cfg.EffectiveLimit(nil)).To(Equal(30))
		})

		It("should work on a nil config", func() {
			var nilCfg *paging.PageConfig
			Expect(nilCfg.EffectiveLimit(nil)).To(Equal(paging.DefaultPageSize))
		})
	})

	Describe("ApplyPaginateOptions", func() {
		It("should apply options in order", func() {
			cfg := paging.ApplyPaginateOptions(
				paging.WithDefaultSize(5),
				paging.WithMaxSize(25),
				paging.WithTotalCount(true),
			)

			Expect(cfg.DefaultSize).To(Equal(5))
			Expect(cfg.MaxSize).To(Equal(25))
			Expect(cfg.IncludeTotalCount).To(BeTrue())
		})

		It("should copy a whole config", func() {
			base := &paging.PageConfig{DefaultSize: 3, MaxSize: 9, IncludeTotalCount: true}
			cfg := paging.ApplyPaginateOptions(paging.WithConfig(base), paging.WithMaxSize(12))

			Expect(cfg.DefaultSize).To(Equal(3))
			Expect(cfg.MaxSize).To(Equal(12))
			Expect(base.MaxSize).To(Equal(9))
		})
	})
})
