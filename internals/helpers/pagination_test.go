// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := BuildPagination(95, Paging{Page: 2, PerPage: 20, Offset: 20, Limit: 20}, 20)
		assert.Equal(t, 5, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
		assert.Equal(t, 20, p.Count)
	})

	t.Run("last page", func(t *testing.T) {
		p := BuildPagination(95, Paging{Page: 5, PerPage: 20}, 15)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("empty result still has one page", func(t *testing.T) {
		p := BuildPagination(0, Paging{Page: 1, PerPage: 20}, 0)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})
}
