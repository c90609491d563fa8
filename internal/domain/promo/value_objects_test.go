//go:build unit

package promo_test

import (
	"testing"

	"bayashop-backoffice/internal/domain/promo"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScope(t *testing.T) {
	testCases := []struct {
		in   string
		want promo.Scope
		err  error
	}{
		{in: "all", want: promo.ScopeAll},
		{in: "", want: promo.ScopeAll},
		{in: " Specific ", want: promo.ScopeSpecific},
		{in: "partial", err: promo.ErrInvalidScope},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := promo.NewScope(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIDSet(t *testing.T) {
	t.Run("sorted and de-duplicated", func(t *testing.T) {
		s := promo.NewIDSet([]int64{9, 5, 9, 1})
		if diff := cmp.Diff([]int64{1, 5, 9}, s.Slice()); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 3, s.Len())
		assert.True(t, s.Contains(5))
		assert.False(t, s.Contains(7))
	})

	t.Run("zero value is empty and serializes as empty slice", func(t *testing.T) {
		var s promo.IDSet
		assert.True(t, s.IsEmpty())
		assert.NotNil(t, s.Slice())
		assert.Empty(t, s.Slice())
		assert.NoError(t, s.Validate())
	})

	t.Run("slice is a copy", func(t *testing.T) {
		s := promo.NewIDSet([]int64{1, 2})
		out := s.Slice()
		out[0] = 100
		assert.True(t, s.Contains(1))
	})

	t.Run("input is not aliased", func(t *testing.T) {
		in := []int64{3, 2}
		s := promo.NewIDSet(in)
		in[0] = 50
		assert.False(t, s.Contains(50))
	})
}
