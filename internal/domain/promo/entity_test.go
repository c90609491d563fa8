//go:build unit

package promo_test

import (
	"testing"

	"bayashop-backoffice/internal/domain/promo"
	"bayashop-backoffice/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PromoBuilder)
	errIs  error
}

func TestDraft(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPromoBuilder().BuildDraft()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "SUMMER10", actual.Code)
		assert.Equal(t, promo.ScopeAll, actual.ProductScope)
		assert.Equal(t, promo.ScopeAll, actual.CategoryScope)
		assert.True(t, actual.ProductIDs.IsEmpty())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank code",
				mutate: func(b *builder.PromoBuilder) { b.WithCode("   ") },
				errIs:  promo.ErrInvalidCode,
			},
			{
				name:   "negative reduction",
				mutate: func(b *builder.PromoBuilder) { b.WithReduction(-0.01) },
				errIs:  promo.ErrInvalidReduction,
			},
			{
				name:   "zero reduction",
				mutate: func(b *builder.PromoBuilder) { b.WithReduction(0) },
			},
			{
				name:   "unknown product scope",
				mutate: func(b *builder.PromoBuilder) { b.ProductScope = "some" },
				errIs:  promo.ErrInvalidScope,
			},
			{
				name:   "unknown category scope",
				mutate: func(b *builder.PromoBuilder) { b.CategoryScope = "none" },
				errIs:  promo.ErrInvalidScope,
			},
			{
				name:   "empty scope defaults to all",
				mutate: func(b *builder.PromoBuilder) { b.ProductScope = "" },
			},
			{
				name:   "zero product id",
				mutate: func(b *builder.PromoBuilder) { b.WithProducts("specific", 0, 4) },
				errIs:  promo.ErrInvalidMappedID,
			},
			{
				name:   "negative category id",
				mutate: func(b *builder.PromoBuilder) { b.WithCategories("specific", -3) },
				errIs:  promo.ErrInvalidMappedID,
			},
			{
				name:   "ids under an all scope are not checked",
				mutate: func(b *builder.PromoBuilder) { b.WithProducts("all", -3).WithCategories("all", 0) },
			},
			{
				name: "start after end is accepted",
				mutate: func(b *builder.PromoBuilder) {
					b.WithWindow(b.EndDate, b.StartDate)
				},
			},
		})
	})

	t.Run("code is trimmed", func(t *testing.T) {
		actual, err := builder.NewPromoBuilder().WithCode("  NOEL  ").BuildDraft()
		require.NoError(t, err)
		assert.Equal(t, "NOEL", actual.Code)
	})

	t.Run("normalized code matches lookup input", func(t *testing.T) {
		actual, err := builder.NewPromoBuilder().WithCode(" SALE10 ").BuildDraft()
		require.NoError(t, err)
		assert.Equal(t, "SALE10", actual.Code)
		assert.Equal(t, actual.Code, promo.NormalizeCode("\tSALE10 "))
	})

	t.Run("effective ids follow the scope", func(t *testing.T) {
		specific, err := builder.NewPromoBuilder().
			WithProducts("specific", 9, 5, 9).
			WithCategories("all", 3).
			BuildDraft()
		require.NoError(t, err)

		if diff := cmp.Diff([]int64{5, 9}, specific.EffectiveProductIDs().Slice()); diff != "" {
			t.Errorf("product ids mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []int64{}, specific.EffectiveCategoryIDs().Slice())
	})
}

func TestPromoCodeIsWithin(t *testing.T) {
	p := builder.NewPromoBuilder().WithWindow(now, now.Add(1)).BuildDomain()

	assert.True(t, p.IsWithin(now))
	assert.True(t, p.IsWithin(now.Add(1)))
	assert.False(t, p.IsWithin(now.Add(-1)))
	assert.False(t, p.IsWithin(now.Add(2)))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPromoBuilder().With(c.mutate).BuildDraft()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
