package gormstore_test

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nrfta/relay-paging"
	"github.com/nrfta/relay-paging/gormstore"
)

type user struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func (user) TableName() string { return "users" }

// statement is the last SQL GORM built.
type statement struct {
	sql  string
	vars []any
}

// dryRunDB opens a GORM session that builds SQL without a server and
// records every query statement into last.
func dryRunDB(last *statement) *gorm.DB {
	conn, err := sql.Open("postgres", "postgres://localhost/none?sslmode=disable")
	Expect(err).ToNot(HaveOccurred())
	DeferCleanup(conn.Close)

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: conn}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	Expect(err).ToNot(HaveOccurred())

	err = db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		last.sql = tx.Statement.SQL.String()
		last.vars = tx.Statement.Vars
	})
	Expect(err).ToNot(HaveOccurred())

	return db
}

var _ = Describe("Fetcher", func() {
	var (
		ctx  context.Context
		last statement
		db   *gorm.DB
		at   time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		last = statement{}
		db = dryRunDB(&last)
		at = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	})

	It("should render the keyset query", func() {
		fetcher := gormstore.NewFetcher[user](db.Model(&user{}))

		_, err := fetcher.Fetch(ctx, paging.FetchParams{
			Limit: 3,
			Conditions: []paging.Condition{paging.Or{
				paging.Lt("created_at", paging.DateValue(at)),
				paging.And{
					paging.Eq("created_at", paging.DateValue(at)),
					paging.Lt("id", paging.StringValue("u-9")),
				},
			}},
			OrderBy: []paging.OrderBy{{Column: "created_at", Desc: true}, {Column: "id", Desc: true}},
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(last.sql).To(ContainSubstring(`FROM "users"`))
		Expect(last.sql).To(ContainSubstring(`"created_at" < $1 OR ("created_at" = $2 AND "id" < $3)`))
		Expect(last.sql).To(ContainSubstring(`ORDER BY "created_at" DESC, "id" DESC`))
		Expect(last.sql).To(ContainSubstring(`LIMIT 3`))
		Expect(last.vars).To(Equal([]any{at, at, "u-9"}))
	})

	It("should leave out empty clauses", func() {
		fetcher := gormstore.NewFetcher[user](db)

		_, err := fetcher.Fetch(ctx, paging.FetchParams{})

		Expect(err).ToNot(HaveOccurred())
		Expect(last.sql).To(Equal(`SELECT * FROM "users"`))
	})

	It("should count without order or limit", func() {
		fetcher := gormstore.NewFetcher[user](db)

		_, err := fetcher.Count(ctx, paging.FetchParams{
			Limit:      3,
			Conditions: []paging.Condition{paging.Eq("name", paging.StringValue("ann"))},
			OrderBy:    []paging.OrderBy{{Column: "id"}},
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(last.sql).To(ContainSubstring(`SELECT count(*) FROM "users" WHERE "name" = $1`))
		Expect(last.sql).ToNot(ContainSubstring("ORDER BY"))
		Expect(last.sql).ToNot(ContainSubstring("LIMIT"))
		Expect(last.vars).To(Equal([]any{"ann"}))
	})

	It("should not leak conditions between calls", func() {
		fetcher := gormstore.NewFetcher[user](db.Model(&user{}))

		_, err := fetcher.Fetch(ctx, paging.FetchParams{
			Conditions: []paging.Condition{paging.Eq("name", paging.StringValue("ann"))},
		})
		Expect(err).ToNot(HaveOccurred())

		_, err = fetcher.Fetch(ctx, paging.FetchParams{})
		Expect(err).ToNot(HaveOccurred())
		Expect(last.sql).ToNot(ContainSubstring("WHERE"))
	})

	It("should fail on predicates it cannot render", func() {
		fetcher := gormstore.NewFetcher[user](db)

		_, err := fetcher.Fetch(ctx, paging.FetchParams{
			Conditions: []paging.Condition{paging.Eq("name", paging.Value{})},
		})

		Expect(err).To(MatchError(ContainSubstring("gormstore: build where")))
	})
})
