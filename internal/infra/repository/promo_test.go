//go:build unit

package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/internal/infra"
	"bayashop-backoffice/internal/infra/repository"
	"bayashop-backoffice/internal/pkg/errs"
	"bayashop-backoffice/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execCall struct {
	sql  string
	args []any
}

// records statements and replays canned results in order
type mockDBTX struct {
	calls   []execCall
	results []execResult
	row     pgx.Row
}

type execResult struct {
	tag pgconn.CommandTag
	err error
}

func (m *mockDBTX) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.calls = append(m.calls, execCall{sql: sql, args: args})
	if len(m.results) == 0 {
		return pgconn.NewCommandTag("OK 0"), nil
	}
	r := m.results[0]
	m.results = m.results[1:]
	return r.tag, r.err
}

func (m *mockDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (m *mockDBTX) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	m.calls = append(m.calls, execCall{sql: sql, args: args})
	return m.row
}

type mockRow struct {
	id  int64
	err error
}

func (r mockRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

func draft(t *testing.T, b *builder.PromoBuilder) *promo.Draft {
	t.Helper()
	d, err := b.BuildDraft()
	require.NoError(t, err)
	return d
}

// =============================================================================
// Promo code identity rows
// =============================================================================

func TestPromoCodeRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        mockRow
		expectID   int64
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:     "success: returns generated id",
			row:      mockRow{id: 41},
			expectID: 41,
		},
		{
			name:       "error: check violation",
			row:        mockRow{err: &pgconn.PgError{Code: "23514", Message: "violates check constraint"}},
			expectKind: infra.KindConstraintViolated,
		},
		{
			name:       "error: connection failure",
			row:        mockRow{err: errors.New("connection reset by peer")},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := &mockDBTX{row: tc.row}
			repo := repository.NewPromoCodeRepository()

			id, err := repo.Insert(ctx, mockDB, draft(t, builder.NewPromoBuilder().WithProducts("specific", 3)))

			require.Len(t, mockDB.calls, 1)
			args := mockDB.calls[0].args
			assert.Equal(t, "SUMMER10", args[0])
			assert.Equal(t, "specific", args[5])
			assert.Equal(t, "all", args[6])

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
				assert.Zero(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectID, id)
		})
	}
}

func TestPromoCodeRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPromoCodeRepository()

	t.Run("update reports affected rows", func(t *testing.T) {
		mockDB := &mockDBTX{results: []execResult{{tag: pgconn.NewCommandTag("UPDATE 0")}}}

		n, err := repo.Update(ctx, mockDB, 9, draft(t, builder.NewPromoBuilder()))
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, int64(9), mockDB.calls[0].args[0])
	})

	t.Run("delete blocked by remaining mappings", func(t *testing.T) {
		fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		mockDB := &mockDBTX{results: []execResult{{err: fk}}}

		_, err := repo.Delete(ctx, mockDB, 9)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("delete reports affected rows", func(t *testing.T) {
		mockDB := &mockDBTX{results: []execResult{{tag: pgconn.NewCommandTag("DELETE 1")}}}

		n, err := repo.Delete(ctx, mockDB, 9)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

// =============================================================================
// Mapping rows
// =============================================================================

func TestPromoMappingRepository_Replace(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPromoMappingRepository()

	t.Run("deletes then bulk inserts the set", func(t *testing.T) {
		mockDB := &mockDBTX{}

		err := repo.ReplaceProductMappings(ctx, mockDB, 4, promo.NewIDSet([]int64{9, 5}))
		require.NoError(t, err)

		require.Len(t, mockDB.calls, 2)
		assert.True(t, strings.HasPrefix(mockDB.calls[0].sql, "DELETE FROM promo_product_mapping"))
		assert.Contains(t, mockDB.calls[1].sql, "unnest($2::bigint[])")
		assert.Equal(t, []any{int64(4), []int64{5, 9}}, mockDB.calls[1].args)
	})

	t.Run("empty set only deletes", func(t *testing.T) {
		mockDB := &mockDBTX{}

		err := repo.ReplaceCategoryMappings(ctx, mockDB, 4, promo.IDSet{})
		require.NoError(t, err)

		require.Len(t, mockDB.calls, 1)
		assert.True(t, strings.HasPrefix(mockDB.calls[0].sql, "DELETE FROM promo_category_mapping"))
	})

	t.Run("insert failure is surfaced", func(t *testing.T) {
		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		mockDB := &mockDBTX{results: []execResult{{}, {err: dup}}}

		err := repo.ReplaceCategoryMappings(ctx, mockDB, 4, promo.NewIDSet([]int64{1}))
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestPromoMappingRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPromoMappingRepository()

	t.Run("sums both tables", func(t *testing.T) {
		mockDB := &mockDBTX{results: []execResult{
			{tag: pgconn.NewCommandTag("DELETE 2")},
			{tag: pgconn.NewCommandTag("DELETE 3")},
		}}

		n, err := repo.DeleteAllMappings(ctx, mockDB, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)
		require.Len(t, mockDB.calls, 2)
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		mockDB := &mockDBTX{results: []execResult{{err: errors.New("broken pipe")}}}

		_, err := repo.DeleteAllMappings(ctx, mockDB, 7)
		require.Error(t, err)
		assert.Len(t, mockDB.calls, 1)
	})
}
