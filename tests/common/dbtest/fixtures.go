//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reference catalog seeded for every test:
// products 101 and 102 belong to category 10, product 201 to category 20.
const (
	CategoryShoes   int64 = 10
	CategoryBags    int64 = 20
	ProductSneaker  int64 = 101
	ProductBoot     int64 = 102
	ProductTote     int64 = 201
	ProductNoMember int64 = 999
)

func CreateProductCategory(t *testing.T, db DBLike, productID, categoryID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		productID, categoryID)
	require.NoError(t, err)
}

func CountPromoCodes(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM promo_codes WHERE code = $1", code).Scan(&n)
	require.NoError(t, err)
	return n
}

// returns the number of product and category mapping rows for promoID
func CountMappings(t *testing.T, db DBLike, promoID int64) (products, categories int) {
	t.Helper()

	ctx := context.Background()
	err := db.QueryRow(ctx, "SELECT count(*) FROM promo_product_mapping WHERE promo_id = $1", promoID).Scan(&products)
	require.NoError(t, err)
	err = db.QueryRow(ctx, "SELECT count(*) FROM promo_category_mapping WHERE promo_id = $1", promoID).Scan(&categories)
	require.NoError(t, err)
	return products, categories
}

func CountAllMappings(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `
		SELECT (SELECT count(*) FROM promo_product_mapping) + (SELECT count(*) FROM promo_category_mapping)`).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO product_categories (product_id, category_id) VALUES
		    ($1, $4), ($2, $4), ($3, $5)
		ON CONFLICT DO NOTHING;
	`, ProductSneaker, ProductBoot, ProductTote, CategoryShoes, CategoryBags)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
