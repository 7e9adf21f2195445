package paging_test

import (
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/relay-paging"
)

var _ = Describe("PageArgs", func() {
	Describe("Validate", func() {
		It("should accept nil and empty args", func() {
			var nilArgs *paging.PageArgs
			Expect(nilArgs.Validate()).To(Succeed())
			Expect((&paging.PageArgs{}).Validate()).To(Succeed())
		})

		It("should accept forward and backward args", func() {
			Expect((&paging.PageArgs{First: ptr(10), After: ptr("c")}).Validate()).To(Succeed())
			Expect((&paging.PageArgs{Last: ptr(10), Before: ptr("c")}).Validate()).To(Succeed())
		})

		DescribeTable("should reject invalid combinations",
			func(args *paging.PageArgs, reason string) {
				err := args.Validate()

				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, paging.ErrInvalidArguments)).To(BeTrue())
				Expect(paging.IsClientError(err)).To(BeTrue())

				var argErr *paging.ArgumentError
				Expect(errors.As(err, &argErr)).To(BeTrue())
				Expect(argErr.Reason).To(ContainSubstring(reason))
			},
			Entry("first and last", &paging.PageArgs{First: ptr(1), Last: ptr(1)}, "both first and last"),
			Entry("first zero", &paging.PageArgs{First: ptr(0)}, "first must be a positive integer"),
			Entry("first negative", &paging.PageArgs{First: ptr(-1)}, "first must be a positive integer"),
			Entry("last zero", &paging.PageArgs{Last: ptr(0)}, "last must be a positive integer"),
			Entry("after and before", &paging.PageArgs{After: ptr("a"), Before: ptr("b")}, "both after and before"),
			Entry("bad orderBy", &paging.PageArgs{OrderBy: ptr(paging.Direction("up"))}, "orderBy"),
		)
	})

	Describe("IsForward", func() {
		It("should default to forward", func() {
			var nilArgs *paging.PageArgs
			Expect(nilArgs.IsForward()).To(BeTrue())
			Expect((&paging.PageArgs{}).IsForward()).To(BeTrue())
		})

		It("should be forward when first or after is set", func() {
			Expect((&paging.PageArgs{First: ptr(2)}).IsForward()).To(BeTrue())
			Expect((&paging.PageArgs{After: ptr("c")}).IsForward()).To(BeTrue())
			Expect((&paging.PageArgs{Last: ptr(2), After: ptr("c")}).IsForward()).To(BeTrue())
		})

		It("should be backward only when last or before is set alone", func() {
			Expect((&paging.PageArgs{Last: ptr(2)}).IsForward()).To(BeFalse())
			Expect((&paging.PageArgs{Before: ptr("c")}).IsForward()).To(BeFalse())
			Expect((&paging.PageArgs{Last: ptr(2), Before: ptr("c")}).IsForward()).To(BeFalse())
		})
	})

	Describe("Cursor", func() {
		It("should prefer after", func() {
			token, isAfter := (&paging.PageArgs{After: ptr("a")}).Cursor()
			Expect(*token).To(Equal("a"))
			Expect(isAfter).To(BeTrue())
		})

		It("should return before otherwise", func() {
			token, isAfter := (&paging.PageArgs{Before: ptr("b")}).Cursor()
			Expect(*token).To(Equal("b"))
			Expect(isAfter).To(BeFalse())
		})

		It("should return nil without cursors", func() {
			token, _ := (&paging.PageArgs{First: ptr(1)}).Cursor()
			Expect(token).To(BeNil())
		})
	})

	Describe("WithOrderBy", func() {
		It("should handle a nil PageArgs arg", func() {
			pa := paging.WithOrderBy(nil, paging.DESC)
			Expect(pa).ToNot(BeNil())
			Expect(*pa.GetOrderBy()).To(Equal(paging.DESC))
		})
	})

	Describe("JSON", func() {
		It("should decode the request shape", func() {
			var pa paging.PageArgs
			err := json.Unmarshal([]byte(`{"last":5,"before":"abc","orderBy":"DESC"}`), &pa)

			Expect(err).ToNot(HaveOccurred())
			Expect(*pa.GetLast()).To(Equal(5))
			Expect(*pa.GetBefore()).To(Equal("abc"))
			Expect(*pa.GetOrderBy()).To(Equal(paging.DESC))
			Expect(pa.GetFirst()).To(BeNil())
		})

		It("should reject unknown directions", func() {
			var pa paging.PageArgs
			err := json.Unmarshal([]byte(`{"orderBy":"sideways"}`), &pa)

			Expect(errors.Is(err, paging.ErrInvalidArguments)).To(BeTrue())
		})
	})

	Describe("Direction", func() {
		It("should reverse", func() {
			Expect(paging.ASC.Reverse()).To(Equal(paging.DESC))
			Expect(paging.DESC.Reverse()).To(Equal(paging.ASC))
		})
	})
})
