package sqlboiler_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/relay-paging"
	"github.com/nrfta/relay-paging/sqlboiler"
)

var _ = Describe("CursorToQueryMods", func() {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	keyset := paging.Or{
		paging.Lt("created_at", paging.DateValue(createdAt)),
		paging.And{
			paging.Eq("created_at", paging.DateValue(createdAt)),
			paging.Lt("id", paging.StringValue("user-123")),
		},
	}
	order := []paging.OrderBy{
		{Column: "created_at", Desc: true},
		{Column: "id", Desc: true},
	}

	Describe("Basic Functionality", func() {
		It("should return empty mods for empty params", func() {
			mods, err := sqlboiler.CursorToQueryMods(paging.FetchParams{})

			Expect(err).ToNot(HaveOccurred())
			Expect(mods).To(BeEmpty())
		})

		It("should add LIMIT mod", func() {
			mods, err := sqlboiler.CursorToQueryMods(paging.FetchParams{Limit: 10})

			Expect(err).ToNot(HaveOccurred())
			Expect(mods).To(HaveLen(1))
			Expect(modTypeName(mods[0])).To(Equal("qm.limitQueryMod"))
		})

		It("should add ORDER BY mod", func() {
			mods, err := sqlboiler.CursorToQueryMods(paging.FetchParams{OrderBy: order})

			Expect(err).ToNot(HaveOccurred())
			Expect(mods).To(HaveLen(1))
			Expect(modTypeName(mods[0])).To(Equal("qm.orderByQueryMod"))
		})

		It("should add WHERE, LIMIT and ORDER BY in order", func() {
			mods, err := sqlboiler.CursorToQueryMods(paging.FetchParams{
				Limit:      11,
				Conditions: []paging.Condition{keyset},
				OrderBy:    order,
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(mods).To(HaveLen(3))
			Expect(modTypeName(mods[0])).To(whereModMatcher())
			Expect(modTypeName(mods[1])).To(Equal("qm.limitQueryMod"))
			Expect(modTypeName(mods[2])).To(Equal("qm.orderByQueryMod"))
		})
	})

	Describe("Generated SQL", func() {
		It("should render the keyset predicate with placeholders", func() {
			mods, err := sqlboiler.CursorToQueryMods(paging.FetchParams{
				Limit:      11,
				Conditions: []paging.Condition{keyset},
				OrderBy:    order,
			})
			Expect(err).ToNot(HaveOccurred())

			sql, args := buildSQL(mods...)

			Expect(sql).To(ContainSubstring(`("created_at" < $1 OR ("created_at" = $2 AND "id" < $3))`))
			Expect(sql).To(ContainSubstring(`ORDER BY "created_at" DESC, "id" DESC`))
			Expect(sql).To(ContainSubstring(`LIMIT 11`))
			Expect(args).To(Equal([]any{createdAt, createdAt, "user-123"}))
		})

		It("should AND base conditions with the cursor predicate", func() {
			mods, err := sqlboiler.CursorToQueryMods(paging.FetchParams{
				Conditions: []paging.Condition{paging.Eq("author_id", paging.StringValue("a1")), keyset},
			})
			Expect(err).ToNot(HaveOccurred())

			sql, args := buildSQL(mods...)

			Expect(sql).To(ContainSubstring(`("author_id" = $1 AND ("created_at" < $2 OR`))
			Expect(args).To(HaveLen(4))
			Expect(args[0]).To(Equal("a1"))
		})

		It("should keep cursor values out of the SQL text", func() {
			hostile := "'; DROP TABLE posts; --"
			mods, err := sqlboiler.CursorToQueryMods(paging.FetchParams{
				Conditions: []paging.Condition{paging.Gt("title", paging.StringValue(hostile))},
			})
			Expect(err).ToNot(HaveOccurred())

			sql, args := buildSQL(mods...)

			Expect(sql).ToNot(ContainSubstring("DROP TABLE"))
			Expect(args).To(Equal([]any{hostile}))
		})

		It("should quote table-qualified columns", func() {
			mods, err := sqlboiler.CursorToQueryMods(paging.FetchParams{
				OrderBy: []paging.OrderBy{{Column: "posts.published_at"}, {Column: "posts.id"}},
			})
			Expect(err).ToNot(HaveOccurred())

			sql, _ := buildSQL(mods...)

			Expect(sql).To(ContainSubstring(`ORDER BY "posts"."published_at" ASC, "posts"."id" ASC`))
		})
	})

	It("should fail on invalid values", func() {
		_, err := sqlboiler.CursorToQueryMods(paging.FetchParams{
			Conditions: []paging.Condition{paging.Eq("id", paging.Value{})},
		})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("CountToQueryMods", func() {
	It("should keep only the WHERE clause", func() {
		mods, err := sqlboiler.CountToQueryMods(paging.FetchParams{
			Limit:      5,
			Conditions: []paging.Condition{paging.Eq("published", paging.StringValue("yes"))},
			OrderBy:    []paging.OrderBy{{Column: "id"}},
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(mods).To(HaveLen(1))
		Expect(modTypeName(mods[0])).To(whereModMatcher())

		sql, _ := buildSQL(mods...)
		Expect(sql).ToNot(ContainSubstring("ORDER BY"))
		Expect(sql).ToNot(ContainSubstring("LIMIT"))
	})

	It("should return no mods without conditions", func() {
		mods, err := sqlboiler.CountToQueryMods(paging.FetchParams{Limit: 5})

		Expect(err).ToNot(HaveOccurred())
		Expect(mods).To(BeEmpty())
	})
})
