//go:build unit

package patch_test

import (
	"testing"

	"bayashop-backoffice/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	active := true
	assert.True(t, patch.Coalesce(&active, false))
	assert.False(t, patch.Coalesce[bool](nil, false))
}

func TestOrEmpty(t *testing.T) {
	got := patch.OrEmpty[int64](nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Equal(t, []int64{3, 1}, patch.OrEmpty([]int64{3, 1}))
}
